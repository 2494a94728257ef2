// Package notes keeps an append-only, line-per-note text file.
package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const (
	header = "Notes:"

	// Empty is returned when there is nothing to show.
	Empty = "No notes found."
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Store appends notes to a single flat file. Writes are serialized within the
// process; other writers to the same file are not coordinated.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewStore creates a store for path on the given filesystem.
func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the location of the notes file.
func (store *Store) Path() string {
	return store.path
}

// ensure creates the notes file with its header line when it does not exist.
func (store *Store) ensure() error {
	_, err := store.fs.Stat(store.path)
	if err == nil {
		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat notes file: %w", err)
	}

	if dir := filepath.Dir(store.path); dir != "." {
		if err := store.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create notes directory: %w", err)
		}
	}

	if err := afero.WriteFile(store.fs, store.path, []byte(header+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to create notes file: %w", err)
	}

	return nil
}

// Append writes message as one new line. Line breaks inside the message are
// folded into spaces so a note always occupies exactly one line.
func (store *Store) Append(message string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensure(); err != nil {
		return err
	}

	f, err := store.fs.OpenFile(store.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open notes file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(lineBreaks.Replace(message) + "\n"); err != nil {
		return fmt.Errorf("failed to append note: %w", err)
	}

	return nil
}

func (store *Store) content() (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensure(); err != nil {
		return "", err
	}

	data, err := afero.ReadFile(store.fs, store.path)
	if err != nil {
		return "", fmt.Errorf("failed to read notes file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Read returns the whole file, trimmed, or Empty.
func (store *Store) Read() (string, error) {
	content, err := store.content()
	if err != nil {
		return "", err
	}

	if content == "" {
		return Empty, nil
	}

	return content, nil
}

// Latest returns the most recently appended note, or Empty.
func (store *Store) Latest() (string, error) {
	content, err := store.content()
	if err != nil {
		return "", err
	}

	lines := strings.Split(content, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])

	if last == "" || (len(lines) == 1 && last == header) {
		return Empty, nil
	}

	return last, nil
}

// SummaryPrompt returns a prompt asking for a summary of every note.
func (store *Store) SummaryPrompt() (string, error) {
	content, err := store.content()
	if err != nil {
		return "", err
	}

	if content == "" {
		return Empty, nil
	}

	return "Summarize the following notes:\n" + content, nil
}
