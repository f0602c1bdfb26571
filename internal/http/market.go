package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finnews-portal/internal/domain"
)

// listHeadlines returns the current headline snapshot, optionally
// filtered by category or ticker
func (s *Server) listHeadlines(c *gin.Context) {
	q := domain.HeadlineQuery{
		Limit:    parseIntQuery(c, "limit", 0),
		Category: c.Query("category"),
		Ticker:   c.Query("ticker"),
	}

	headlines := s.marketService.Headlines(c.Request.Context(), q)
	c.JSON(http.StatusOK, gin.H{
		"articles": headlines,
		"count":    len(headlines),
	})
}

// getSentimentSummary returns stance counts and most-mentioned tickers
func (s *Server) getSentimentSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.marketService.SentimentSummary(c.Request.Context()))
}

// getTrendingTopics returns the tickers trending in the current feed
func (s *Server) getTrendingTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"topics": s.marketService.TrendingTopics(c.Request.Context()),
	})
}

// getSignals returns the per-company trade signal board
func (s *Server) getSignals(c *gin.Context) {
	c.JSON(http.StatusOK, s.marketService.Signals(c.Request.Context()))
}

// getIndices returns index snapshots
func (s *Server) getIndices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"indices": s.marketService.Indices(c.Request.Context()),
	})
}

// getMacroSnapshot returns current macro indicator readings
func (s *Server) getMacroSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics": s.marketService.MacroSnapshot(c.Request.Context()),
	})
}

// getRiskAlerts returns active risk alerts
func (s *Server) getRiskAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alerts": s.marketService.RiskAlerts(c.Request.Context()),
	})
}

// getAlertFeed returns the rolling operational alert feed
func (s *Server) getAlertFeed(c *gin.Context) {
	count := parseIntQuery(c, "count", 0)
	c.JSON(http.StatusOK, gin.H{
		"alerts": s.marketService.AlertFeed(c.Request.Context(), count),
	})
}

// getMarketAnalysis returns the aggregated sentiment / prediction rollup
func (s *Server) getMarketAnalysis(c *gin.Context) {
	c.JSON(http.StatusOK, s.marketService.MarketAnalysis(c.Request.Context()))
}

// getPortfolioPerformance returns the portfolio performance series
func (s *Server) getPortfolioPerformance(c *gin.Context) {
	days := parseIntQuery(c, "days", 0)
	c.JSON(http.StatusOK, gin.H{
		"series": s.marketService.PortfolioPerformance(c.Request.Context(), days),
	})
}

// getSectorExposure returns portfolio exposure by sector
func (s *Server) getSectorExposure(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sectors": s.marketService.SectorExposure(c.Request.Context()),
	})
}

// getCompanySnapshot returns fundamentals for a ticker
func (s *Server) getCompanySnapshot(c *gin.Context) {
	snapshot, err := s.marketService.CompanySnapshot(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// getIntradayChart returns the intraday price chart for a ticker
func (s *Server) getIntradayChart(c *gin.Context) {
	chart, err := s.marketService.IntradayChart(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// getPrediction returns the prediction modal payload for a ticker
func (s *Server) getPrediction(c *gin.Context) {
	prediction, err := s.marketService.Prediction(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// parseIntQuery reads a positive integer query parameter, returning the
// fallback when absent or malformed
func parseIntQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
