package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// FeatureStatus describes whether an optional integration is usable.
// It is resolved once at load time so callers never re-check the
// environment at the point of use.
type FeatureStatus int

const (
	// FeatureEnabled means the integration is fully configured.
	FeatureEnabled FeatureStatus = iota
	// FeatureMissingConfig means required secrets are absent; the feature
	// degrades to a fixed fallback instead of failing startup.
	FeatureMissingConfig
)

// Enabled reports whether the feature can be used.
func (s FeatureStatus) Enabled() bool {
	return s == FeatureEnabled
}

// Config holds the application configuration
type Config struct {
	ServerAddress string
	DatabasePath  string
	Environment   string
	Auth          AuthConfig
	OpenAI        OpenAIConfig
	Market        MarketConfig
	CORS          CORSConfig
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret    string
	SecureCookie bool
	BaseURL      string // Base URL for OAuth callbacks (e.g., http://localhost:8080)
	Google       GoogleOAuthConfig
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	Status       FeatureStatus
}

// OpenAIConfig holds OpenAI API configuration
type OpenAIConfig struct {
	APIKey string
	Model  string
	Status FeatureStatus
}

// MarketConfig holds the synthetic market feed configuration
type MarketConfig struct {
	RefreshInterval time.Duration
	HeadlineCount   int
	UniversePath    string // optional override for the embedded universe file
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://localhost:8080")

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	googleStatus := FeatureMissingConfig
	if googleClientID != "" && googleClientSecret != "" {
		googleStatus = FeatureEnabled
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	openAIStatus := FeatureMissingConfig
	if openAIKey != "" {
		openAIStatus = FeatureEnabled
	}

	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/finnews.db"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		Auth: AuthConfig{
			JWTSecret:    getEnv("AUTH_JWT_SECRET", "change-me-in-production-secret-key"),
			SecureCookie: getEnv("AUTH_SECURE_COOKIE", "false") == "true",
			BaseURL:      getEnv("AUTH_BASE_URL", "http://localhost:8080"),
			Google: GoogleOAuthConfig{
				ClientID:     googleClientID,
				ClientSecret: googleClientSecret,
				Status:       googleStatus,
			},
		},
		OpenAI: OpenAIConfig{
			APIKey: openAIKey,
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Status: openAIStatus,
		},
		Market: MarketConfig{
			RefreshInterval: getDurationEnv("MARKET_REFRESH_INTERVAL", time.Minute),
			HeadlineCount:   getIntEnv("MARKET_HEADLINE_COUNT", 100),
			UniversePath:    os.Getenv("MARKET_UNIVERSE_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseCommaSeparatedList(corsOrigins),
		},
	}, nil
}

// parseCommaSeparatedList splits a comma-separated string into a slice
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return []string{}
	}

	items := strings.Split(s, ",")
	result := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}

	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
