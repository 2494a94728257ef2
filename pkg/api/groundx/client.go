// Package groundx calls the GroundX document search and ingestion API.
package groundx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/theapemachine/mcp-server-multitool/pkg/api"
)

// SearchResult is the "search" object of a content search response.
type SearchResult struct {
	Count   int     `json:"count"`
	Query   string  `json:"query"`
	Score   float64 `json:"score"`
	Text    string  `json:"text"`
	Results []struct {
		DocumentID string  `json:"documentId"`
		FileName   string  `json:"fileName"`
		Score      float64 `json:"score"`
		Text       string  `json:"text"`
	} `json:"results"`
}

// IngestResult is the "ingest" object returned after an upload.
type IngestResult struct {
	ProcessID string `json:"processId"`
	Status    string `json:"status"`
}

// Document describes one file handed to the ingestion pipeline.
type Document struct {
	BucketID   int               `json:"bucketId"`
	FileName   string            `json:"fileName"`
	FileType   string            `json:"fileType"`
	SearchData map[string]string `json:"searchData,omitempty"`
}

// Client talks to the GroundX API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	fs      afero.Fs
}

// New creates a client. Local files for ingestion are read from fsys.
func New(baseURL, apiKey string, httpClient *http.Client, fsys afero.Fs) *Client {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    api.HTTPClient(httpClient),
		fs:      fsys,
	}
}

// Search runs a content search against a bucket and returns at most n
// results. n <= 0 leaves the count to the API default.
func (client *Client) Search(ctx context.Context, bucketID int, query string, n int) (*SearchResult, error) {
	request := map[string]any{"query": query}
	if n > 0 {
		request["n"] = n
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	endpoint := client.baseURL + "/api/v1/search/" + strconv.Itoa(bucketID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Search SearchResult `json:"search"`
	}

	if err := client.do(req, &out); err != nil {
		return nil, err
	}

	return &out.Search, nil
}

// IngestLocal uploads a local PDF into a bucket.
func (client *Client) IngestLocal(ctx context.Context, bucketID int, path string) (*IngestResult, error) {
	data, err := afero.ReadFile(client.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	fileName := filepath.Base(path)

	metadata, err := json.Marshal(Document{
		BucketID:   bucketID,
		FileName:   fileName,
		FileType:   "pdf",
		SearchData: map[string]string{"key": "value"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode document metadata: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("blob", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write upload part: %w", err)
	}

	if err := writer.WriteField("metadata", string(metadata)); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/api/v1/ingest/documents/local", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build ingest request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out struct {
		Ingest IngestResult `json:"ingest"`
	}

	if err := client.do(req, &out); err != nil {
		return nil, err
	}

	return &out.Ingest, nil
}

func (client *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", client.apiKey)

	resp, err := client.http.Do(req)
	if err != nil {
		return fmt.Errorf("groundx request failed: %w", err)
	}

	body, err := api.ReadResponse("groundx", resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode groundx response: %w", err)
	}

	return nil
}
