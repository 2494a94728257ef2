// Package news provides the brave_search_results tool.
package news

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-multitool/pkg/api/brave"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

// Searcher runs a news search and returns the raw response.
type Searcher interface {
	News(ctx context.Context, query string) (string, error)
}

// Recorder keeps a copy of vendor responses, usually the notes store.
type Recorder interface {
	Append(message string) error
}

// Tool implements brave_search_results.
type Tool struct {
	*tools.BaseTool
	searcher Searcher
	recorder Recorder
}

// New creates the brave_search_results tool. A nil recorder disables recording.
func New(searcher Searcher, recorder Recorder) *Tool {
	return &Tool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"brave_search_results",
			mcp.WithDescription("Fetch news search results from the past week using the Brave Search engine"),
			mcp.WithString(
				"news",
				mcp.Required(),
				mcp.Description("The news topic to search for"),
			),
		)),
		searcher: searcher,
		recorder: recorder,
	}
}

// Handler processes brave_search_results requests
func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := utils.GetRequiredStringParam(request, "news")
	if err != nil {
		return nil, err
	}

	body, err := tool.searcher.News(ctx, query)
	if err != nil {
		return nil, err
	}

	log.Debug("news search", "query", query, "results", brave.ResultCount(body))

	if tool.recorder != nil {
		if err := tool.recorder.Append(body); err != nil {
			log.Warn("failed to record news result", "query", query, "error", err)
		}
	}

	return tools.NewTextResult(body), nil
}
