package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/finnews-portal/internal/config"
	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/openai"
)

func setupTestResearchService(t *testing.T, status config.FeatureStatus, mock *openai.MockHTTPClient) (domain.ResearchService, func()) {
	t.Helper()
	database, cleanup := setupTestDB(t)

	client := openai.NewClientWithHTTPClient("test-key", "gpt-4o-mini", "https://api.test.local/v1", mock)
	return NewResearchService(client, status, database, slog.Default()), cleanup
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`
}

func TestResearchService_Summarize(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Response = openai.MockResponse{StatusCode: 200, Body: completionBody("Rates held steady.")}

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	summary, err := service.Summarize(context.Background(), "The central bank left rates unchanged at its June meeting.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary != "Rates held steady." {
		t.Errorf("Expected summary from completion, got '%s'", summary)
	}

	if len(mock.RecordedRequests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(mock.RecordedRequests))
	}
	req := mock.RecordedRequests[0]
	if !strings.HasSuffix(req.URL, "/chat/completions") {
		t.Errorf("Expected completions endpoint, got %s", req.URL)
	}
	if !strings.Contains(req.Body, "You are an analyst.") {
		t.Error("Expected analyst system prompt in request body")
	}
	if !strings.Contains(req.Body, "under 3 sentences") {
		t.Error("Expected summarize instruction in request body")
	}
}

func TestResearchService_Summarize_EmptyInput(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	summary, err := service.Summarize(context.Background(), "   \n ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary != "Please provide some text to summarize." {
		t.Errorf("Expected prompt-for-input message, got '%s'", summary)
	}
	if len(mock.RecordedRequests) != 0 {
		t.Error("Expected no upstream request for empty input")
	}
}

func TestResearchService_Summarize_MissingKey(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	service, cleanup := setupTestResearchService(t, config.FeatureMissingConfig, mock)
	defer cleanup()

	// A missing key degrades to a fixed message; it is never an error
	summary, err := service.Summarize(context.Background(), "Some earnings text.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(summary, "OPENAI_API_KEY") {
		t.Errorf("Expected configuration-missing message, got '%s'", summary)
	}
	if len(mock.RecordedRequests) != 0 {
		t.Error("Expected no upstream request when key is missing")
	}
}

func TestResearchService_Summarize_UpstreamError(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Err = errors.New("connection refused")

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	_, err := service.Summarize(context.Background(), "Some earnings text.")
	if err == nil {
		t.Fatal("Expected error for upstream failure, got nil")
	}
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("Expected external service error, got %v", err)
	}
}

func TestResearchService_Chat(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Response = openai.MockResponse{StatusCode: 200, Body: completionBody("Watch the yield curve.")}

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	ctx := context.Background()
	reply, err := service.Chat(ctx, "analyst@example.com", "What should I watch this week?")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "Watch the yield curve." {
		t.Errorf("Expected assistant reply, got '%s'", reply)
	}

	if len(mock.RecordedRequests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(mock.RecordedRequests))
	}
	if !strings.Contains(mock.RecordedRequests[0].Body, "FinResearch Copilot") {
		t.Error("Expected copilot system prompt in request body")
	}

	// Both sides of the exchange are persisted
	history, err := service.ChatHistory(ctx, "analyst@example.com")
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 stored messages, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("Expected user then assistant, got %s then %s", history[0].Role, history[1].Role)
	}
}

func TestResearchService_Chat_ThreadsHistory(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Response = openai.MockResponse{StatusCode: 200, Body: completionBody("Second answer.")}

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	ctx := context.Background()
	if _, err := service.Chat(ctx, "analyst@example.com", "First question"); err != nil {
		t.Fatalf("First turn failed: %v", err)
	}
	if _, err := service.Chat(ctx, "analyst@example.com", "Second question"); err != nil {
		t.Fatalf("Second turn failed: %v", err)
	}

	// The second request must carry the first exchange as context
	second := mock.RecordedRequests[1].Body
	if !strings.Contains(second, "First question") {
		t.Error("Expected prior user turn in second request")
	}
	if !strings.Contains(second, "Second answer.") {
		t.Error("Expected prior assistant turn in second request")
	}
}

func TestResearchService_Chat_EmptyInput(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	reply, err := service.Chat(context.Background(), "analyst@example.com", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "" {
		t.Errorf("Expected empty reply for empty input, got '%s'", reply)
	}
	if len(mock.RecordedRequests) != 0 {
		t.Error("Expected no upstream request for empty input")
	}
}

func TestResearchService_Chat_UpstreamErrorKeepsHistoryClean(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Err = errors.New("connection refused")

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	ctx := context.Background()
	if _, err := service.Chat(ctx, "analyst@example.com", "Any question"); err == nil {
		t.Fatal("Expected error for upstream failure, got nil")
	}

	history, err := service.ChatHistory(ctx, "analyst@example.com")
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected failed turn not to be persisted, got %d messages", len(history))
	}
}

func TestResearchService_ClearChatHistory(t *testing.T) {
	mock := openai.NewMockHTTPClient()
	mock.Response = openai.MockResponse{StatusCode: 200, Body: completionBody("Answer.")}

	service, cleanup := setupTestResearchService(t, config.FeatureEnabled, mock)
	defer cleanup()

	ctx := context.Background()
	if _, err := service.Chat(ctx, "analyst@example.com", "A question"); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if err := service.ClearChatHistory(ctx, "analyst@example.com"); err != nil {
		t.Fatalf("Failed to clear history: %v", err)
	}

	history, err := service.ChatHistory(ctx, "analyst@example.com")
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history after clear, got %d messages", len(history))
	}
}
