// Package weather calls the WeatherAPI.com current conditions endpoint.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/theapemachine/mcp-server-multitool/pkg/api"
)

// Client talks to WeatherAPI.com.
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

// Current returns the raw JSON body of the current conditions for city.
func (client *Client) Current(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("key", client.apiKey)
	params.Set("q", city)
	params.Set("aqi", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/v1/current.json?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch weather: %w", err)
	}

	body, err := api.ReadResponse("weather", resp)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
