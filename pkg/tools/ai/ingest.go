package ai

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

// IngestTool uploads a local PDF into the knowledge base.
type IngestTool struct {
	*tools.BaseTool
	ingester Ingester
	fs       afero.Fs
	bucketID int
}

// NewIngestTool creates the ingest_documents tool.
func NewIngestTool(ingester Ingester, fsys afero.Fs, bucketID int) *IngestTool {
	return &IngestTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"ingest_documents",
			mcp.WithDescription("Ingest a local PDF file into the knowledge base"),
			mcp.WithString(
				"local_file_path",
				mcp.Required(),
				mcp.Description("Path to the local file containing the documents to ingest"),
			),
		)),
		ingester: ingester,
		fs:       fsys,
		bucketID: bucketID,
	}
}

// Handler processes ingest_documents requests
func (tool *IngestTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := utils.GetRequiredStringParam(request, "local_file_path")
	if err != nil {
		return nil, err
	}

	if tool.bucketID <= 0 {
		return nil, tools.InvalidArgument("no GroundX bucket configured; set BUCKET_ID")
	}

	info, err := tool.fs.Stat(path)
	if err != nil {
		return nil, tools.InvalidArgument("cannot read '%s': %v", path, err)
	}

	if info.IsDir() {
		return nil, tools.InvalidArgument("'%s' is a directory", path)
	}

	if _, err := tool.ingester.IngestLocal(ctx, tool.bucketID, path); err != nil {
		return nil, err
	}

	return tools.NewTextResult(fmt.Sprintf(
		"Ingested %s into the knowledge base. It should be available in a few minutes.",
		filepath.Base(path),
	)), nil
}
