package ai

import "github.com/mark3labs/mcp-go/mcp"

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var out string
	for _, content := range result.Content {
		switch c := content.(type) {
		case mcp.TextContent:
			out += c.Text
		case *mcp.TextContent:
			out += c.Text
		}
	}

	return out
}
