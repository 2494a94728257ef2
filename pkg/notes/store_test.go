package notes

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreatesFileWithHeader(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewStore(fsys, "data/notes.txt")

	content, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "Notes:", content)

	raw, err := afero.ReadFile(fsys, "data/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "Notes:\n", string(raw))
}

func TestStoreAppendThenRead(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewStore(fsys, "notes.txt")

	require.NoError(t, store.Append("buy milk"))
	require.NoError(t, store.Append("call mum"))

	content, err := store.Read()
	require.NoError(t, err)
	assert.Contains(t, content, "buy milk")
	assert.Equal(t, "Notes:\nbuy milk\ncall mum", content)

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "call mum", latest)
}

func TestStoreFoldsLineBreaks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewStore(fsys, "notes.txt")

	require.NoError(t, store.Append("{\n  \"temp_c\": 20\r\n}"))

	raw, err := afero.ReadFile(fsys, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "Notes:\n{   \"temp_c\": 20 }\n", string(raw))
}

func TestStoreLatestOnFreshFile(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "notes.txt")

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, Empty, latest)
}

func TestStoreEmptyFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "notes.txt", nil, 0o644))
	store := NewStore(fsys, "notes.txt")

	content, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, Empty, content)

	prompt, err := store.SummaryPrompt()
	require.NoError(t, err)
	assert.Equal(t, Empty, prompt)
}

func TestStoreSummaryPrompt(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "notes.txt")
	require.NoError(t, store.Append("ship the release"))

	prompt, err := store.SummaryPrompt()
	require.NoError(t, err)
	assert.Equal(t, "Summarize the following notes:\nNotes:\nship the release", prompt)
}
