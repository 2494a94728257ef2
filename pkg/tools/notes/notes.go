// Package notes exposes the local notes file as MCP tools, a prompt and a resource.
package notes

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	store "github.com/theapemachine/mcp-server-multitool/pkg/notes"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

// AddNoteTool appends a note.
type AddNoteTool struct {
	*tools.BaseTool
	store *store.Store
}

// NewAddNoteTool creates the add_note tool.
func NewAddNoteTool(notes *store.Store) *AddNoteTool {
	return &AddNoteTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"add_note",
			mcp.WithDescription("Append a new note to the notes file"),
			mcp.WithString(
				"message",
				mcp.Required(),
				mcp.Description("The message to be added to the notes file"),
			),
		)),
		store: notes,
	}
}

// Handler processes add_note requests
func (tool *AddNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := utils.GetRequiredStringParam(request, "message")
	if err != nil {
		return nil, err
	}

	if err := tool.store.Append(message); err != nil {
		return nil, err
	}

	return tools.NewTextResult("Note added successfully"), nil
}

// ReadNotesTool returns every note.
type ReadNotesTool struct {
	*tools.BaseTool
	store *store.Store
}

// NewReadNotesTool creates the read_notes tool.
func NewReadNotesTool(notes *store.Store) *ReadNotesTool {
	return &ReadNotesTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"read_notes",
			mcp.WithDescription("Read and return all notes from the notes file"),
		)),
		store: notes,
	}
}

// Handler processes read_notes requests
func (tool *ReadNotesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := tool.store.Read()
	if err != nil {
		return nil, err
	}

	return tools.NewTextResult(content), nil
}

// SummaryPromptTool returns a prompt asking to summarize the notes.
type SummaryPromptTool struct {
	*tools.BaseTool
	store *store.Store
}

// NewSummaryPromptTool creates the note_summary_prompt tool.
func NewSummaryPromptTool(notes *store.Store) *SummaryPromptTool {
	return &SummaryPromptTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"note_summary_prompt",
			mcp.WithDescription("Generate a prompt asking the AI to summarize all current notes"),
		)),
		store: notes,
	}
}

// Handler processes note_summary_prompt requests
func (tool *SummaryPromptTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := tool.store.SummaryPrompt()
	if err != nil {
		return nil, err
	}

	return tools.NewTextResult(prompt), nil
}

// RegisterNoteTools returns the notes tools.
func RegisterNoteTools(notes *store.Store) []tools.Tool {
	return []tools.Tool{
		NewAddNoteTool(notes),
		NewReadNotesTool(notes),
		NewSummaryPromptTool(notes),
	}
}
