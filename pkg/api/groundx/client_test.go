package groundx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/mcp-server-multitool/pkg/api"
)

func TestSearch(t *testing.T) {
	var (
		path    string
		apiKey  string
		payload map[string]any
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("X-API-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		_, _ = w.Write([]byte(`{"search":{"count":1,"query":"refunds","score":87.5,"text":"Refunds are issued within 30 days.","results":[{"documentId":"d1","fileName":"policy.pdf","score":87.5,"text":"Refunds are issued within 30 days."}]}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "gx-key", srv.Client(), afero.NewMemMapFs())

	result, err := client.Search(context.Background(), 4242, "refunds", 5)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/search/4242", path)
	assert.Equal(t, "gx-key", apiKey)
	assert.Equal(t, "refunds", payload["query"])
	assert.Equal(t, 5.0, payload["n"])

	assert.Equal(t, "Refunds are issued within 30 days.", result.Text)
	assert.Equal(t, 87.5, result.Score)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "policy.pdf", result.Results[0].FileName)
}

func TestSearchWithoutResultCount(t *testing.T) {
	var payload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"search":{"score":12,"text":"ok"}}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL, "gx-key", srv.Client(), nil).Search(context.Background(), 1, "refunds", 0)
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Text)
	assert.Equal(t, "refunds", payload["query"])
	assert.NotContains(t, payload, "n")
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "bad", srv.Client(), nil).Search(context.Background(), 1, "q", 5)

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid api key", apiErr.Message)
}

func TestIngestLocal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/docs/handbook.pdf", []byte("%PDF-1.7 fake"), 0o644))

	var (
		metadata Document
		blob     []byte
		fileName string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ingest/documents/local", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.NoError(t, json.Unmarshal([]byte(r.FormValue("metadata")), &metadata))

		file, header, err := r.FormFile("blob")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()

		fileName = header.Filename
		blob, err = io.ReadAll(file)
		assert.NoError(t, err)

		_, _ = w.Write([]byte(`{"ingest":{"processId":"proc-1","status":"queued"}}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL, "gx-key", srv.Client(), fsys).IngestLocal(context.Background(), 7, "/docs/handbook.pdf")
	require.NoError(t, err)

	assert.Equal(t, "proc-1", result.ProcessID)
	assert.Equal(t, "queued", result.Status)
	assert.Equal(t, "handbook.pdf", fileName)
	assert.Equal(t, "%PDF-1.7 fake", string(blob))
	assert.Equal(t, Document{
		BucketID:   7,
		FileName:   "handbook.pdf",
		FileType:   "pdf",
		SearchData: map[string]string{"key": "value"},
	}, metadata)
}

func TestIngestLocalMissingFile(t *testing.T) {
	_, err := New("http://unused", "k", nil, afero.NewMemMapFs()).IngestLocal(context.Background(), 1, "/nope.pdf")
	assert.Error(t, err)
}
