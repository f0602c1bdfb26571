package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "DATABASE_PATH", "ENVIRONMENT",
		"AUTH_JWT_SECRET", "AUTH_SECURE_COOKIE", "AUTH_BASE_URL",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"MARKET_REFRESH_INTERVAL", "MARKET_HEADLINE_COUNT",
		"MARKET_UNIVERSE_PATH", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.ServerAddress != ":8080" {
		t.Errorf("Expected ServerAddress :8080, got %s", config.ServerAddress)
	}
	if config.DatabasePath != "./data/finnews.db" {
		t.Errorf("Expected default database path, got %s", config.DatabasePath)
	}
	if config.Environment != "development" {
		t.Errorf("Expected development environment, got %s", config.Environment)
	}
	if config.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %s", config.OpenAI.Model)
	}
	if config.Market.RefreshInterval != time.Minute {
		t.Errorf("Expected 1m refresh interval, got %v", config.Market.RefreshInterval)
	}
	if config.Market.HeadlineCount != 100 {
		t.Errorf("Expected 100 headlines, got %d", config.Market.HeadlineCount)
	}
	if config.Market.UniversePath != "" {
		t.Errorf("Expected embedded universe by default, got %q", config.Market.UniversePath)
	}
	if len(config.CORS.AllowedOrigins) != 3 {
		t.Errorf("Expected 3 default CORS origins, got %d", len(config.CORS.AllowedOrigins))
	}

	// Optional integrations degrade when unconfigured
	if config.OpenAI.Status.Enabled() {
		t.Error("Expected OpenAI feature disabled without API key")
	}
	if config.Auth.Google.Status.Enabled() {
		t.Error("Expected Google sign-in disabled without client credentials")
	}
}

func TestLoad_FeatureStatuses(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !config.OpenAI.Status.Enabled() {
		t.Error("Expected OpenAI feature enabled with API key set")
	}
	if !config.Auth.Google.Status.Enabled() {
		t.Error("Expected Google sign-in enabled with credentials set")
	}
}

func TestLoad_GooglePartialConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Client ID without a secret is still missing configuration
	if config.Auth.Google.Status.Enabled() {
		t.Error("Expected Google sign-in disabled with partial credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("MARKET_REFRESH_INTERVAL", "30s")
	t.Setenv("MARKET_HEADLINE_COUNT", "25")
	t.Setenv("MARKET_UNIVERSE_PATH", "/etc/finnews/universe.yaml")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://one.example, https://two.example")

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.ServerAddress != ":9090" {
		t.Errorf("Expected :9090, got %s", config.ServerAddress)
	}
	if config.Market.RefreshInterval != 30*time.Second {
		t.Errorf("Expected 30s interval, got %v", config.Market.RefreshInterval)
	}
	if config.Market.HeadlineCount != 25 {
		t.Errorf("Expected 25 headlines, got %d", config.Market.HeadlineCount)
	}
	if config.Market.UniversePath != "/etc/finnews/universe.yaml" {
		t.Errorf("Expected universe path override, got %q", config.Market.UniversePath)
	}
	if len(config.CORS.AllowedOrigins) != 2 || config.CORS.AllowedOrigins[1] != "https://two.example" {
		t.Errorf("Unexpected CORS origins: %v", config.CORS.AllowedOrigins)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MARKET_HEADLINE_COUNT", "not-a-number")
	t.Setenv("MARKET_REFRESH_INTERVAL", "-5s")

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Market.HeadlineCount != 100 {
		t.Errorf("Expected fallback headline count, got %d", config.Market.HeadlineCount)
	}
	if config.Market.RefreshInterval != time.Minute {
		t.Errorf("Expected fallback refresh interval, got %v", config.Market.RefreshInterval)
	}
}
