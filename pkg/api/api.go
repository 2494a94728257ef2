// Package api holds what the vendor HTTP clients share: error shaping and
// response reading.
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// maxBodySize caps how much of a vendor response is read.
const maxBodySize = 8 << 20

// APIError describes a non-2xx answer from a vendor API.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API returned status %d", e.Service, e.StatusCode)
	}

	return fmt.Sprintf("%s API returned status %d: %s", e.Service, e.StatusCode, e.Message)
}

// Vendors disagree on where the error text lives.
var messagePaths = []string{
	"error.message",
	"error.detail",
	"error.meta.errors.0.error",
	"message",
	"detail",
	"error",
}

// ReadResponse reads the body and turns non-2xx statuses into *APIError.
func ReadResponse(service string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", service, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, &APIError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Message:    ErrorMessage(body),
	}
}

// ErrorMessage digs the human readable message out of an error body.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}

	for _, path := range messagePaths {
		if result := gjson.GetBytes(body, path); result.Type == gjson.String && result.String() != "" {
			return result.String()
		}
	}

	return strings.TrimSpace(string(body))
}

// HTTPClient returns client, or http.DefaultClient when nil.
func HTTPClient(client *http.Client) *http.Client {
	if client == nil {
		return http.DefaultClient
	}

	return client
}
