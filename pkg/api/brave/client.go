// Package brave calls the Brave Search news endpoint.
package brave

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/theapemachine/mcp-server-multitool/pkg/api"
	"github.com/tidwall/gjson"
)

// Query defaults used for every news search.
const (
	Count      = 10
	Freshness  = "pw"
	SafeSearch = "moderate"
	Language   = "en"
)

// Client talks to the Brave Search API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client. A nil httpClient uses http.DefaultClient.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    api.HTTPClient(httpClient),
	}
}

// News runs a news search from the past week and returns the raw JSON body.
func (client *Client) News(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(Count))
	params.Set("freshness", Freshness)
	params.Set("safesearch", SafeSearch)
	params.Set("search_lang", Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/res/v1/news/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build brave request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", client.apiKey)

	resp, err := client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to search news: %w", err)
	}

	body, err := api.ReadResponse("brave", resp)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// ResultCount reports how many results a news response holds.
func ResultCount(body string) int {
	return int(gjson.Get(body, "results.#").Int())
}
