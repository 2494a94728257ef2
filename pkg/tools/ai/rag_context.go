package ai

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

const ragContextResults = 5

// RAGContextTool returns raw retrieved text for the caller's own model to use.
type RAGContextTool struct {
	*tools.BaseTool
	searcher Searcher
	bucketID int
}

// NewRAGContextTool creates the search_doc_for_rag_context tool.
func NewRAGContextTool(searcher Searcher, bucketID int) *RAGContextTool {
	return &RAGContextTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"search_doc_for_rag_context",
			mcp.WithDescription("Search the knowledge base and return relevant text the model can use to answer the query"),
			mcp.WithString(
				"query",
				mcp.Required(),
				mcp.Description("The search query supplied by the user"),
			),
		)),
		searcher: searcher,
		bucketID: bucketID,
	}
}

// Handler processes search_doc_for_rag_context requests
func (tool *RAGContextTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := utils.GetRequiredStringParam(request, "query")
	if err != nil {
		return nil, err
	}

	if tool.bucketID <= 0 {
		return nil, tools.InvalidArgument("no GroundX bucket configured; set BUCKET_ID")
	}

	search, err := tool.searcher.Search(ctx, tool.bucketID, query, ragContextResults)
	if err != nil {
		return nil, err
	}

	return tools.NewTextResult(search.Text), nil
}
