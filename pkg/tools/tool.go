// Package tools provides the tool interface, the shared error set and the
// registry that dispatches invocations to registered tools.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Standard errors for consistent error handling
var (
	ErrDuplicateTool   = errors.New("duplicate tool")
	ErrUnknownTool     = errors.New("unknown tool")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstream        = errors.New("upstream error")
)

// Tool defines the interface for all tools in the system
type Tool interface {
	// Handle returns the underlying MCP tool
	Handle() mcp.Tool

	// Handler processes tool requests and returns responses
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// Name returns the name of the tool
	Name() string
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool from its MCP definition
func NewBaseTool(handle mcp.Tool) *BaseTool {
	return &BaseTool{handle: handle}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.handle.Name
}

// UpstreamError carries a failure raised by the external service behind a tool.
type UpstreamError struct {
	Tool string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Tool, ErrUpstream, e.Err)
}

// Unwrap exposes both the sentinel and the underlying vendor error.
func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

// InvalidArgument builds an error that wraps ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
