// Package weather provides the fetch_weather tool.
package weather

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

// Fetcher returns current conditions for a city.
type Fetcher interface {
	Current(ctx context.Context, city string) (string, error)
}

// Recorder keeps a copy of vendor responses, usually the notes store.
type Recorder interface {
	Append(message string) error
}

// Tool implements fetch_weather.
type Tool struct {
	*tools.BaseTool
	fetcher  Fetcher
	recorder Recorder
}

// New creates the fetch_weather tool. A nil recorder disables recording.
func New(fetcher Fetcher, recorder Recorder) *Tool {
	return &Tool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"fetch_weather",
			mcp.WithDescription("Fetch current weather information for a given city"),
			mcp.WithString(
				"city",
				mcp.Required(),
				mcp.Description("Name of the city, e.g. 'New York'"),
			),
		)),
		fetcher:  fetcher,
		recorder: recorder,
	}
}

// Handler processes fetch_weather requests
func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := utils.GetRequiredStringParam(request, "city")
	if err != nil {
		return nil, err
	}

	body, err := tool.fetcher.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	if tool.recorder != nil {
		if err := tool.recorder.Append(body); err != nil {
			log.Warn("failed to record weather result", "city", city, "error", err)
		}
	}

	return tools.NewTextResult(body), nil
}
