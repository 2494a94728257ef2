// Package multitool wires the configured clients, the notes store and every
// tool into one MCP server.
package multitool

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openai/openai-go/option"
	"github.com/spf13/afero"
	"github.com/theapemachine/mcp-server-multitool/pkg/api/brave"
	"github.com/theapemachine/mcp-server-multitool/pkg/api/groundx"
	weatherapi "github.com/theapemachine/mcp-server-multitool/pkg/api/weather"
	"github.com/theapemachine/mcp-server-multitool/pkg/config"
	"github.com/theapemachine/mcp-server-multitool/pkg/notes"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/ai"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/ai/provider"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/news"
	notetools "github.com/theapemachine/mcp-server-multitool/pkg/tools/notes"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/weather"
)

const (
	Name    = "Multiple MCP tools including RAG in single MCP server"
	Version = "1.0.0"
)

// Options carries the process-level resources the tools share.
type Options struct {
	Logger     *log.Logger
	FS         afero.Fs
	HTTPClient *http.Client
}

// MultiTool manages all available tools
type MultiTool struct {
	Server   *server.MCPServer
	Registry *tools.Registry
	Notes    *notes.Store
}

// New builds the server from cfg. Missing credentials are not fatal; the
// affected tools fail when called.
func New(cfg *config.Config, opts Options) (*MultiTool, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}

	bucketID, err := parseBucketID(cfg.GroundX.BucketID)
	if err != nil {
		return nil, err
	}

	store := notes.NewStore(opts.FS, cfg.Notes.Path)

	var weatherRecorder weather.Recorder
	var newsRecorder news.Recorder

	if cfg.Notes.RecordResults {
		weatherRecorder = store
		newsRecorder = store
	}

	gx := groundx.New(cfg.GroundX.BaseURL, cfg.GroundX.APIKey, opts.HTTPClient, opts.FS)

	all := []tools.Tool{}
	all = append(all, notetools.RegisterNoteTools(store)...)
	all = append(all,
		news.New(brave.New(cfg.Brave.BaseURL, cfg.Brave.APIKey, opts.HTTPClient), newsRecorder),
		weather.New(weatherapi.New(cfg.Weather.BaseURL, cfg.Weather.APIKey, opts.HTTPClient), weatherRecorder),
	)
	all = append(all, ai.RegisterAITools(ai.Dependencies{
		Searcher:  gx,
		Ingester:  gx,
		Completer: completer(cfg, opts.HTTPClient),
		FS:        opts.FS,
		BucketID:  bucketID,
		Model:     cfg.OpenAI.Model,
	})...)

	registry := tools.NewRegistry(opts.Logger)

	for _, tool := range all {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}

	mcpServer := server.NewMCPServer(
		Name,
		Version,
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
	)

	registry.Attach(mcpServer)
	notetools.AddPrompts(mcpServer, store)
	notetools.AddResources(mcpServer, store)

	opts.Logger.Info("tools registered", "count", len(all), "notes", store.Path())

	return &MultiTool{
		Server:   mcpServer,
		Registry: registry,
		Notes:    store,
	}, nil
}

func completer(cfg *config.Config, httpClient *http.Client) *provider.OpenAIProvider {
	var opts []option.RequestOption
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return provider.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, opts...)
}

func parseBucketID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("BUCKET_ID must be an integer, got %q", raw)
	}

	return id, nil
}
