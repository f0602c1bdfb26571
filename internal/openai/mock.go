package openai

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a test implementation that records requests and
// returns canned responses.
type MockHTTPClient struct {
	// Response returned for every request
	Response MockResponse
	// Err is returned instead of a response when set
	Err error
	// Recorded requests
	RecordedRequests []RequestRecord
}

// MockResponse represents a mocked HTTP response
type MockResponse struct {
	StatusCode int
	Body       string
}

// RequestRecord records a request made to the mock client
type RequestRecord struct {
	Method string
	URL    string
	Body   string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		RecordedRequests: make([]RequestRecord, 0),
	}
}

// Do records the request and returns the canned response
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	record := RequestRecord{
		Method: req.Method,
		URL:    req.URL.String(),
	}
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		record.Body = string(bodyBytes)
		req.Body = io.NopCloser(strings.NewReader(record.Body))
	}
	m.RecordedRequests = append(m.RecordedRequests, record)

	if m.Err != nil {
		return nil, m.Err
	}

	statusCode := m.Response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(m.Response.Body)),
		Header:     make(http.Header),
	}, nil
}
