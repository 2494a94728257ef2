// Package ai provides the document ingestion and retrieval-augmented
// generation tools.
package ai

import (
	"context"

	"github.com/theapemachine/mcp-server-multitool/pkg/api/groundx"
)

// Searcher retrieves document context from a knowledge base bucket.
type Searcher interface {
	Search(ctx context.Context, bucketID int, query string, n int) (*groundx.SearchResult, error)
}

// Ingester uploads a local document into a knowledge base bucket.
type Ingester interface {
	IngestLocal(ctx context.Context, bucketID int, path string) (*groundx.IngestResult, error)
}

// Completer answers a user message under a system prompt.
type Completer interface {
	Complete(ctx context.Context, model, system, user string) (string, error)
}
