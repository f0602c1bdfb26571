package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finnews-portal/internal/config"
	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/openai"
	"github.com/finnews-portal/internal/validation"
)

// Fixed user-facing strings for the degraded paths. These are returned
// as normal results, not errors: an unconfigured key is an expected
// deployment state, not a failure.
const (
	msgEmptySummarizeInput = "Please provide some text to summarize."
	msgMissingAPIKey       = "OpenAI API key missing. Set OPENAI_API_KEY to enable research features."

	analystSystemPrompt = "You are an analyst."
	summarizePrompt     = "Summarize the following financial text in under 3 sentences:\n"

	copilotSystemPrompt = "You are FinResearch Copilot helping analysts interpret news, indices, and risks. Be concise and cite assumptions."
)

// Chat message roles persisted alongside the thread
const (
	chatRoleUser      = "user"
	chatRoleAssistant = "assistant"
)

// researchService implements the ResearchService interface
type researchService struct {
	client   *openai.Client
	status   config.FeatureStatus
	database *db.DB
	logger   *slog.Logger
}

// NewResearchService creates a new research service. When the OpenAI
// feature status reports missing configuration the client may be nil;
// every operation then degrades to its fixed message.
func NewResearchService(client *openai.Client, status config.FeatureStatus, database *db.DB, logger *slog.Logger) domain.ResearchService {
	return &researchService{
		client:   client,
		status:   status,
		database: database,
		logger:   logger,
	}
}

// Summarize condenses a financial text into research notes
func (s *researchService) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return msgEmptySummarizeInput, nil
	}
	if err := validation.ValidateSummarizeInput(text); err != nil {
		return "", domain.WrapValidationError("text", err)
	}
	if !s.status.Enabled() {
		return msgMissingAPIKey, nil
	}

	messages := []openai.Message{
		{Role: openai.RoleSystem, Content: analystSystemPrompt},
		{Role: openai.RoleUser, Content: summarizePrompt + text},
	}

	reply, err := s.client.ChatCompletion(ctx, messages)
	if err != nil {
		s.logger.ErrorContext(ctx, "summarize request failed", "error", err)
		return "", domain.WrapExternalService("openai", err)
	}

	return strings.TrimSpace(reply), nil
}

// Chat sends one copilot turn, threading the user's stored history, and
// persists both sides of the exchange on success.
func (s *researchService) Chat(ctx context.Context, userEmail, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if err := validation.ValidateChatInput(input); err != nil {
		return "", domain.WrapValidationError("message", err)
	}
	if !s.status.Enabled() {
		return msgMissingAPIKey, nil
	}

	history, err := s.database.ListChatMessages(userEmail)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load chat history", "error", err)
		return "", domain.WrapDatabaseOperation("list chat messages", err)
	}

	messages := make([]openai.Message, 0, len(history)+2)
	messages = append(messages, openai.Message{Role: openai.RoleSystem, Content: copilotSystemPrompt})
	for _, m := range history {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.Message{Role: openai.RoleUser, Content: input})

	reply, err := s.client.ChatCompletion(ctx, messages)
	if err != nil {
		s.logger.ErrorContext(ctx, "chat request failed", "error", err)
		return "", domain.WrapExternalService("openai", err)
	}
	reply = strings.TrimSpace(reply)

	// Persist the exchange only after a successful completion so the
	// thread never holds turns the model did not see.
	if err := s.database.CreateChatMessage(db.NewChatMessage(userEmail, chatRoleUser, input)); err != nil {
		s.logger.WarnContext(ctx, "failed to persist user message", "error", err)
	}
	if err := s.database.CreateChatMessage(db.NewChatMessage(userEmail, chatRoleAssistant, reply)); err != nil {
		s.logger.WarnContext(ctx, "failed to persist assistant message", "error", err)
	}

	return reply, nil
}

// ChatHistory retrieves a user's copilot thread in order
func (s *researchService) ChatHistory(ctx context.Context, userEmail string) ([]*db.ChatMessage, error) {
	messages, err := s.database.ListChatMessages(userEmail)
	if err != nil {
		return nil, domain.WrapDatabaseOperation("list chat messages", err)
	}
	return messages, nil
}

// ClearChatHistory wipes a user's copilot thread
func (s *researchService) ClearChatHistory(ctx context.Context, userEmail string) error {
	if err := s.database.DeleteChatMessages(userEmail); err != nil {
		return domain.WrapDatabaseOperation("delete chat messages", err)
	}
	return nil
}
