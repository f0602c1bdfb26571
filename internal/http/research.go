package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SummarizeRequest represents a summarization request
type SummarizeRequest struct {
	Text string `json:"text"`
}

// ChatRequest represents a copilot chat turn
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// summarize condenses submitted text through the research service
func (s *Server) summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid summarize request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	summary, err := s.researchService.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// chat sends a copilot message and returns the assistant reply
func (s *Server) chat(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	reply, err := s.researchService.Chat(c.Request.Context(), email, req.Message)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// getChatHistory returns the caller's stored copilot thread
func (s *Server) getChatHistory(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	messages, err := s.researchService.ChatHistory(c.Request.Context(), email)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// clearChatHistory deletes the caller's stored copilot thread
func (s *Server) clearChatHistory(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	if err := s.researchService.ClearChatHistory(c.Request.Context(), email); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
