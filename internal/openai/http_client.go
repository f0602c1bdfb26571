package openai

import (
	"net/http"
	"time"
)

// HTTPClient interface abstracts HTTP operations for testing
type HTTPClient interface {
	// Do executes an HTTP request and returns a response
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient is the production implementation backed by http.Client
type RealHTTPClient struct {
	client *http.Client
}

// NewRealHTTPClient creates a new real HTTP client. Completion calls can
// be slow, so the timeout is generous.
func NewRealHTTPClient() *RealHTTPClient {
	return &RealHTTPClient{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Do executes an HTTP request and returns a response
func (r *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return r.client.Do(req)
}
