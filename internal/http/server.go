package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/auth"
	"github.com/go-pkgz/auth/avatar"
	"github.com/go-pkgz/auth/provider"
	"github.com/go-pkgz/auth/token"

	"github.com/finnews-portal/internal/config"
	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/market"
	"github.com/finnews-portal/internal/openai"
	"github.com/finnews-portal/internal/service"
	"github.com/finnews-portal/internal/system"
)

// Server wraps the HTTP server
type Server struct {
	config           *config.Config
	database         *db.DB
	accountService   domain.AccountService
	marketService    domain.MarketService
	researchService  domain.ResearchService
	watchlistService domain.WatchlistService
	systemService    domain.SystemService
	engine           *gin.Engine
	authService      *auth.Service
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, database *db.DB, universe *market.Universe, feed *market.Feed, gen *market.Generator) *Server {
	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.Default()

	// Middleware - order matters
	engine.Use(securityHeadersMiddleware())
	engine.Use(corsMiddleware(cfg))
	engine.Use(cacheControlMiddleware())
	engine.Use(loggerMiddleware())
	engine.Use(jsonBodyLimitMiddleware(maxBodySize))

	// Request body size limit
	engine.MaxMultipartMemory = maxBodySize

	logger := slog.Default()

	accountService := service.NewAccountService(database, logger)
	marketService := service.NewMarketService(feed, gen, logger)

	openAIClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	researchService := service.NewResearchService(openAIClient, cfg.OpenAI.Status, database, logger)

	watchlistService := service.NewWatchlistService(database, universe, logger)
	systemService := service.NewSystemService(system.NewCollector(""), logger)

	server := &Server{
		config:           cfg,
		database:         database,
		accountService:   accountService,
		marketService:    marketService,
		researchService:  researchService,
		watchlistService: watchlistService,
		systemService:    systemService,
		engine:           engine,
	}

	server.authService = server.initAuthService(cfg)

	server.setupRoutes()

	return server
}

// initAuthService initializes go-pkgz/auth with the local credential
// provider and, when configured, Google OAuth
func (s *Server) initAuthService(cfg *config.Config) *auth.Service {
	baseURL := cfg.Auth.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// URL must include /auth prefix since that's where we mount the handlers
	opts := auth.Opts{
		SecretReader: token.SecretFunc(func(id string) (string, error) {
			return cfg.Auth.JWTSecret, nil
		}),
		TokenDuration:  time.Hour * 24,     // Token valid for 24 hours
		CookieDuration: time.Hour * 24 * 7, // Cookie valid for 7 days
		Issuer:         "finnews-portal",
		URL:            baseURL + "/auth",
		AvatarStore:    avatar.NewNoOp(),
		SecureCookies:  cfg.Auth.SecureCookie,
		DisableXSRF:    true, // Disable for API usage
		Validator: token.ValidatorFunc(func(_ string, claims token.Claims) bool {
			if claims.User == nil {
				slog.Warn("JWT validation failed: no user in claims")
				return false
			}
			if identityEmail(*claims.User) == "" {
				slog.Warn("JWT validation failed: no email in claims", "user_id", claims.User.ID)
				return false
			}
			return true
		}),
	}

	authService := auth.NewService(opts)

	// Local email/password sign-in backed by the account store. The
	// direct provider hands us the submitted credentials and we accept or
	// reject them; go-pkgz/auth issues the JWT cookie on success.
	authService.AddDirectProvider("local", provider.CredCheckerFunc(func(user, password string) (ok bool, err error) {
		_, authErr := s.accountService.Authenticate(context.Background(), user, password)
		if authErr != nil {
			if errors.Is(authErr, domain.ErrInvalidCredentials) {
				return false, nil
			}
			return false, authErr
		}
		return true, nil
	}))

	// Google sign-in is offered only when credentials are configured
	if cfg.Auth.Google.Status.Enabled() {
		authService.AddProvider("google", cfg.Auth.Google.ClientID, cfg.Auth.Google.ClientSecret)
		slog.Info("Google sign-in enabled")
	} else {
		slog.Info("Google sign-in disabled: client credentials not configured")
	}

	return authService
}

// identityEmail normalizes an authenticated identity to the email the
// account and watchlist stores key on. OAuth providers populate Email;
// the direct provider carries the login in Name.
func identityEmail(u token.User) string {
	if u.Email != "" {
		return strings.ToLower(strings.TrimSpace(u.Email))
	}
	if strings.Contains(u.Name, "@") {
		return strings.ToLower(strings.TrimSpace(u.Name))
	}
	return ""
}

const (
	maxBodySize  = 1 << 20          // 1MB max request body
	readTimeout  = 30 * time.Second // 30s for reading request
	writeTimeout = 90 * time.Second // allows for slow upstream completions
	idleTimeout  = 120 * time.Second
)

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.ServerAddress
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:           addr,
		Handler:        s.engine,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	return server.ListenAndServe()
}

// securityHeadersMiddleware adds security-related HTTP headers
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		// Prevent clickjacking
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		// Enable XSS protection
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		// Referrer policy
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// HSTS (only if using HTTPS)
		if c.Request.TLS != nil {
			c.Writer.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// corsMiddleware adds CORS headers with configurable origin
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is in allowed list
		allowed := false
		for _, allowedOrigin := range cfg.CORS.AllowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-XSRF-TOKEN")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// cacheControlMiddleware sets appropriate cache headers based on path
func cacheControlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// API and auth endpoints serve dynamic data - never cache
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
			c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Writer.Header().Set("Pragma", "no-cache")
			c.Writer.Header().Set("Expires", "0")
		} else if strings.HasPrefix(path, "/assets/") {
			// Static assets are versioned/hashed files that never change
			c.Writer.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}

		c.Next()
	}
}

// jsonBodyLimitMiddleware limits the size of JSON request bodies to prevent DoS
func jsonBodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only apply to JSON requests
		if c.Request.Method != "GET" && c.Request.Method != "DELETE" && c.Request.Method != "OPTIONS" {
			contentType := c.GetHeader("Content-Type")
			if strings.Contains(contentType, "application/json") {
				if c.Request.ContentLength > maxBytes {
					c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
						"error": "Request body too large",
					})
					return
				}
				// Wrap the request body with MaxBytesReader
				c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
			}
		}
		c.Next()
	}
}

// loggerMiddleware logs HTTP requests
func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.InfoContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote_addr", c.Request.RemoteAddr,
		)
		c.Next()
	}
}

// getAuthMiddleware returns a Gin middleware that requires authentication
func (s *Server) getAuthMiddleware() gin.HandlerFunc {
	authMiddleware := s.authService.Middleware()

	return func(c *gin.Context) {
		// Wrap the Gin handler for go-pkgz/auth middleware
		var userInfo token.User
		var authenticated bool

		handler := authMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract user from context
			if u, err := token.GetUserInfo(r); err == nil {
				userInfo = u
				authenticated = true
			}
			// Update request in gin context
			c.Request = r
		}))

		handler.ServeHTTP(c.Writer, c.Request)

		if !authenticated {
			// Override the text/plain response from go-pkgz/auth with JSON
			c.Writer.Header().Set("Content-Type", "application/json")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required. Please sign in."})
			c.Abort()
			return
		}

		// Store user info in gin context for handlers
		c.Set("user", userInfo)
		c.Next()
	}
}

// getUserFromContext extracts the authenticated user from context
func getUserFromContext(c *gin.Context) (token.User, bool) {
	if user, exists := c.Get("user"); exists {
		if u, ok := user.(token.User); ok {
			return u, true
		}
	}
	return token.User{}, false
}

// userEmailFromContext extracts the normalized email of the
// authenticated user, or aborts with 401 when there is none
func userEmailFromContext(c *gin.Context) (string, bool) {
	user, exists := getUserFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return "", false
	}
	email := identityEmail(user)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return "", false
	}
	return email, true
}

// AuthHandlers returns the auth HTTP handlers for mounting
func (s *Server) AuthHandlers() (http.Handler, http.Handler) {
	return s.authService.Handlers()
}
