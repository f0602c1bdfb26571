package openai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestChatCompletion(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.Response = MockResponse{
		StatusCode: 200,
		Body:       `{"choices":[{"message":{"role":"assistant","content":"Markets closed higher."}}]}`,
	}

	client := NewClientWithHTTPClient("test-key", "gpt-4o-mini", "https://api.test.local/v1", mock)

	reply, err := client.ChatCompletion(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are an analyst."},
		{Role: RoleUser, Content: "How did markets do?"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "Markets closed higher." {
		t.Errorf("Expected first choice content, got '%s'", reply)
	}

	if len(mock.RecordedRequests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(mock.RecordedRequests))
	}
	req := mock.RecordedRequests[0]
	if req.Method != "POST" {
		t.Errorf("Expected POST, got %s", req.Method)
	}
	if req.URL != "https://api.test.local/v1/chat/completions" {
		t.Errorf("Unexpected URL: %s", req.URL)
	}
	if !strings.Contains(req.Body, `"model":"gpt-4o-mini"`) {
		t.Errorf("Expected model in request body, got %s", req.Body)
	}
	if !strings.Contains(req.Body, "You are an analyst.") {
		t.Error("Expected system prompt in request body")
	}
}

func TestChatCompletion_APIError(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.Response = MockResponse{
		StatusCode: 401,
		Body:       `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
	}

	client := NewClientWithHTTPClient("bad-key", "gpt-4o-mini", "https://api.test.local/v1", mock)

	_, err := client.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for 401 response, got nil")
	}
	if !strings.Contains(err.Error(), "Incorrect API key") {
		t.Errorf("Expected upstream error message, got %v", err)
	}
}

func TestChatCompletion_TransportError(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.Err = errors.New("connection refused")

	client := NewClientWithHTTPClient("test-key", "gpt-4o-mini", "https://api.test.local/v1", mock)

	_, err := client.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for transport failure, got nil")
	}
}

func TestChatCompletion_NoChoices(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.Response = MockResponse{StatusCode: 200, Body: `{"choices":[]}`}

	client := NewClientWithHTTPClient("test-key", "gpt-4o-mini", "https://api.test.local/v1", mock)

	_, err := client.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for empty choices, got nil")
	}
}

func TestChatCompletion_MalformedResponse(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.Response = MockResponse{StatusCode: 200, Body: `not json`}

	client := NewClientWithHTTPClient("test-key", "gpt-4o-mini", "https://api.test.local/v1", mock)

	_, err := client.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for malformed response, got nil")
	}
}
