// Package openai is a minimal client for the OpenAI chat completions
// API. It makes exactly one request per call: no retries, no streaming,
// no response caching.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	apiBaseURL = "https://api.openai.com/v1"

	// RoleSystem, RoleUser, and RoleAssistant are the chat roles the
	// completions API understands.
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the request payload for /chat/completions
type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// chatCompletionResponse is the response payload from /chat/completions
type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Client calls the chat completions endpoint
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  HTTPClient
}

// NewClient creates a client for the given API key and model
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiBaseURL,
		client:  NewRealHTTPClient(),
	}
}

// NewClientWithHTTPClient creates a client with an injected HTTP client,
// used by tests.
func NewClientWithHTTPClient(apiKey, model, baseURL string, httpClient HTTPClient) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  httpClient,
	}
}

// ChatCompletion sends the message list and returns the first choice's text
func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	url := c.baseURL + "/chat/completions"

	reqBody := chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completions API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var respData chatCompletionResponse
	if err := json.Unmarshal(body, &respData); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if respData.Error != nil {
			return "", fmt.Errorf("completions API error (status %d): %s", resp.StatusCode, respData.Error.Message)
		}
		return "", fmt.Errorf("completions API returned status %d", resp.StatusCode)
	}

	if len(respData.Choices) == 0 {
		return "", fmt.Errorf("completions API returned no choices")
	}

	return respData.Choices[0].Message.Content, nil
}
