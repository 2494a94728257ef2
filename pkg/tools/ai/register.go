package ai

import (
	"github.com/spf13/afero"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
)

// Dependencies are the clients the AI tools call through.
type Dependencies struct {
	Searcher  Searcher
	Ingester  Ingester
	Completer Completer
	FS        afero.Fs
	BucketID  int
	Model     string
}

// RegisterAITools returns the ingestion and retrieval tools.
func RegisterAITools(deps Dependencies) []tools.Tool {
	return []tools.Tool{
		NewIngestTool(deps.Ingester, deps.FS, deps.BucketID),
		NewSearchQueryTool(deps.Searcher, deps.Completer, SearchConfig{
			CompletionModel: deps.Model,
			BucketID:        deps.BucketID,
		}),
		NewRAGContextTool(deps.Searcher, deps.BucketID),
	}
}
