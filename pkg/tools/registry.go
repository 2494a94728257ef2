package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registry maps tool names to tools and routes invocations to them.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	order  []string
	logger *log.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to the
// package default.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}

	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register adds a tool. Names are unique within a registry.
func (r *Registry) Register(tool Tool) error {
	name := tool.Name()
	if name == "" {
		return InvalidArgument("tool name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}

	r.tools[name] = tool
	r.order = append(r.order, name)

	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)

	return names
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}

	return out
}

// Invoke validates args against the tool's input schema and calls its handler
// once. Handler failures come back as *UpstreamError.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if err := ValidateArguments(tool.Handle().InputSchema, args); err != nil {
		return nil, err
	}

	logger := r.logger.With("tool", name, "invocation", uuid.NewString())
	logger.Debug("invoking tool")
	start := time.Now()

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := tool.Handler(ctx, request)
	if err != nil {
		logger.Error("tool failed", "error", err, "duration", time.Since(start))

		if errors.Is(err, ErrInvalidArgument) {
			return nil, err
		}

		return nil, &UpstreamError{Tool: name, Err: err}
	}

	logger.Info("tool completed", "duration", time.Since(start))

	return result, nil
}

// Attach registers every tool on the MCP server. Calls arriving from the
// server go through Invoke; errors become error-flagged results.
func (r *Registry) Attach(s *server.MCPServer) {
	for _, tool := range r.Tools() {
		s.AddTool(tool.Handle(), r.serve)
	}
}

func (r *Registry) serve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := r.Invoke(ctx, request.Params.Name, request.Params.Arguments)
	if err != nil {
		return NewErrorResult(err), nil
	}

	return result, nil
}

// ValidateArguments checks required parameters are present and that every
// supplied parameter with a declared type matches it.
func ValidateArguments(schema mcp.ToolInputSchema, args map[string]any) error {
	for _, key := range schema.Required {
		if val, exists := args[key]; !exists || val == nil {
			return InvalidArgument("missing required parameter '%s'", key)
		}
	}

	for key, val := range args {
		if val == nil {
			continue
		}

		property, ok := schema.Properties[key].(map[string]any)
		if !ok {
			continue
		}

		expected, _ := property["type"].(string)
		if expected == "" || matchesType(expected, val) {
			continue
		}

		return InvalidArgument("parameter '%s' must be of type %s", key, expected)
	}

	return nil
}

func matchesType(expected string, val any) bool {
	switch expected {
	case "string":
		_, ok := val.(string)
		return ok
	case "boolean":
		_, ok := val.(bool)
		return ok
	case "object":
		_, ok := val.(map[string]any)
		return ok
	case "array":
		_, ok := val.([]any)
		return ok
	case "number":
		_, ok := toFloat(val)
		return ok
	case "integer":
		f, ok := toFloat(val)
		return ok && f == math.Trunc(f)
	default:
		return true
	}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
