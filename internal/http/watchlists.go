package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finnews-portal/internal/domain"
)

// listWatchlists returns the caller's watchlists, seeding the defaults
// for first-time users
func (s *Server) listWatchlists(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	lists, err := s.watchlistService.ListWatchlists(c.Request.Context(), email)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"watchlists": lists,
		"count":      len(lists),
	})
}

// createWatchlist creates a new watchlist for the caller
func (s *Server) createWatchlist(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	var req domain.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid create watchlist request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	watchlist, err := s.watchlistService.CreateWatchlist(c.Request.Context(), email, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, watchlist)
}

// deleteWatchlist removes one of the caller's watchlists
func (s *Server) deleteWatchlist(c *gin.Context) {
	email, ok := userEmailFromContext(c)
	if !ok {
		return
	}

	if err := s.watchlistService.DeleteWatchlist(c.Request.Context(), email, c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Watchlist deleted"})
}
