package notes

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	store "github.com/theapemachine/mcp-server-multitool/pkg/notes"
)

// LatestURI addresses the most recent note.
const LatestURI = "notes://latest"

// AddPrompts registers the note_summary_prompt prompt.
func AddPrompts(s *server.MCPServer, notes *store.Store) {
	s.AddPrompt(mcp.NewPrompt("note_summary_prompt",
		mcp.WithPromptDescription("Ask the AI to summarize all current notes"),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return summaryPrompt(notes)
	})
}

func summaryPrompt(notes *store.Store) (*mcp.GetPromptResult, error) {
	prompt, err := notes.SummaryPrompt()
	if err != nil {
		return nil, err
	}

	return mcp.NewGetPromptResult(
		"Summarize the notes",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				"user",
				mcp.NewTextContent(prompt),
			),
		},
	), nil
}

// AddResources registers the notes://latest resource.
func AddResources(s *server.MCPServer, notes *store.Store) {
	s.AddResource(mcp.NewResource(
		LatestURI,
		"Latest note",
		mcp.WithResourceDescription("The most recently added note"),
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]interface{}, error) {
		return latestContents(notes)
	})
}

func latestContents(notes *store.Store) ([]interface{}, error) {
	latest, err := notes.Latest()
	if err != nil {
		return nil, err
	}

	return []interface{}{
		mcp.TextResourceContents{
			ResourceContents: mcp.ResourceContents{
				URI:      LatestURI,
				MIMEType: "text/plain",
			},
			Text: latest,
		},
	}, nil
}
