package utils

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
)

// GetStringParam safely extracts a string parameter from the request
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.Params.Arguments[key]
	if !exists || val == nil {
		if required {
			return "", tools.InvalidArgument("missing required parameter '%s'", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", tools.InvalidArgument("parameter '%s' must be a string", key)
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}

// GetMapParam safely extracts a map parameter from the request
func GetMapParam(req mcp.CallToolRequest, key string, required bool) (map[string]any, error) {
	val, exists := req.Params.Arguments[key]
	if !exists || val == nil {
		if required {
			return nil, tools.InvalidArgument("missing required parameter '%s'", key)
		}
		return nil, nil
	}

	m, ok := val.(map[string]any)
	if !ok {
		return nil, tools.InvalidArgument("parameter '%s' must be an object", key)
	}

	return m, nil
}

// GetOptionalMapParam is a shorthand for GetMapParam with required=false
func GetOptionalMapParam(req mcp.CallToolRequest, key string) (map[string]any, error) {
	return GetMapParam(req, key, false)
}
