package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Mount auth routes (login, logout, oauth callbacks)
	// go-pkgz/auth expects paths relative to mount point, so we strip /auth prefix
	authHandler, avatarHandler := s.AuthHandlers()
	if authHandler != nil {
		s.engine.Any("/auth/*path", wrapAuthHandler(authHandler, "/auth"))
	}
	if avatarHandler != nil {
		s.engine.Any("/avatar/*path", wrapAuthHandler(avatarHandler, "/avatar"))
	}

	// Health check endpoint (no auth required)
	s.engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "finnews-portal",
		})
	})

	// Account creation and session introspection stay outside the auth
	// gate: signup precedes login, and the session probe reports the
	// anonymous state rather than rejecting it
	s.engine.POST("/api/signup", s.signUp)
	s.engine.GET("/api/session", s.getSession)

	// API routes - all protected by authentication
	api := s.engine.Group("/api")
	api.Use(s.getAuthMiddleware())
	{
		api.GET("/me", s.getCurrentUser)

		s.setupNewsRoutes(api)
		s.setupMarketRoutes(api)
		s.setupPortfolioRoutes(api)
		s.setupStockRoutes(api)
		s.setupWatchlistRoutes(api)
		s.setupResearchRoutes(api)

		api.GET("/system/stats", s.getSystemStats)
	}
}

func (s *Server) setupNewsRoutes(api *gin.RouterGroup) {
	news := api.Group("/news")
	{
		news.GET("", s.listHeadlines)
		news.GET("/sentiment", s.getSentimentSummary)
		news.GET("/trending", s.getTrendingTopics)
	}
}

func (s *Server) setupMarketRoutes(api *gin.RouterGroup) {
	market := api.Group("/market")
	{
		market.GET("/signals", s.getSignals)
		market.GET("/indices", s.getIndices)
		market.GET("/macro", s.getMacroSnapshot)
		market.GET("/risk", s.getRiskAlerts)
		market.GET("/alerts", s.getAlertFeed)
		market.GET("/analysis", s.getMarketAnalysis)
	}
}

func (s *Server) setupPortfolioRoutes(api *gin.RouterGroup) {
	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("/performance", s.getPortfolioPerformance)
		portfolio.GET("/sectors", s.getSectorExposure)
	}
}

func (s *Server) setupStockRoutes(api *gin.RouterGroup) {
	stocks := api.Group("/stocks")
	{
		stocks.GET("/:ticker/chart", s.getIntradayChart)
		stocks.GET("/:ticker/prediction", s.getPrediction)
		stocks.GET("/:ticker/snapshot", s.getCompanySnapshot)
	}
}

func (s *Server) setupWatchlistRoutes(api *gin.RouterGroup) {
	watchlists := api.Group("/watchlists")
	{
		watchlists.GET("", s.listWatchlists)
		watchlists.POST("", s.createWatchlist)
		watchlists.DELETE("/:id", s.deleteWatchlist)
	}
}

func (s *Server) setupResearchRoutes(api *gin.RouterGroup) {
	research := api.Group("/research")
	{
		research.POST("/summarize", s.summarize)
		research.POST("/chat", s.chat)
		research.GET("/chat/history", s.getChatHistory)
		research.DELETE("/chat/history", s.clearChatHistory)
	}
}

// getCurrentUser returns the authenticated user info
func (s *Server) getCurrentUser(c *gin.Context) {
	user, exists := getUserFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Not authenticated",
			Details: "Please sign in to continue",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"email":   identityEmail(user),
		"name":    user.Name,
		"picture": user.Picture,
	})
}

// wrapAuthHandler wraps an http.Handler for use with Gin, stripping the prefix
// go-pkgz/auth expects paths relative to where it's mounted
func wrapAuthHandler(handler http.Handler, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Strip the prefix from the URL path for the handler
		originalPath := c.Request.URL.Path
		c.Request.URL.Path = strings.TrimPrefix(originalPath, prefix)

		// Serve using the wrapped handler
		handler.ServeHTTP(c.Writer, c.Request)

		// Restore original path (in case anything else needs it)
		c.Request.URL.Path = originalPath
	}
}
