package news

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
)

type stubSearcher struct {
	body  string
	err   error
	query string
}

func (s *stubSearcher) News(ctx context.Context, query string) (string, error) {
	s.query = query
	return s.body, s.err
}

type memoryRecorder struct {
	lines []string
}

func (r *memoryRecorder) Append(message string) error {
	r.lines = append(r.lines, message)
	return nil
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = "brave_search_results"
	request.Params.Arguments = args
	return request
}

func TestHandlerReturnsBodyAndRecords(t *testing.T) {
	body := `{"results":[{"title":"Gophers"}]}`
	searcher := &stubSearcher{body: body}
	recorder := &memoryRecorder{}

	result, err := New(searcher, recorder).Handler(context.Background(), newRequest(map[string]any{"news": "golang"}))
	require.NoError(t, err)

	assert.Equal(t, "golang", searcher.query)
	assert.Equal(t, body, resultText(result))
	assert.Equal(t, []string{body}, recorder.lines)
}

func TestHandlerPropagatesVendorError(t *testing.T) {
	vendorErr := errors.New("brave API returned status 429")
	recorder := &memoryRecorder{}

	_, err := New(&stubSearcher{err: vendorErr}, recorder).Handler(context.Background(), newRequest(map[string]any{"news": "golang"}))

	assert.ErrorIs(t, err, vendorErr)
	assert.Empty(t, recorder.lines)
}

func TestHandlerRequiresNews(t *testing.T) {
	_, err := New(&stubSearcher{}, nil).Handler(context.Background(), newRequest(map[string]any{"news": 7.0}))

	assert.ErrorIs(t, err, tools.ErrInvalidArgument)
}
