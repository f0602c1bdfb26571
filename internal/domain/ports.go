package domain

import (
	"context"

	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/market"
	"github.com/finnews-portal/internal/system"
)

// ============================================================================
// Primary Ports (Application Use Cases)
// ============================================================================

// AccountService defines the primary port for account management use cases
type AccountService interface {
	SignUp(ctx context.Context, req SignUpRequest) (*db.User, error)
	Authenticate(ctx context.Context, email, password string) (*db.User, error)
	GetUser(ctx context.Context, email string) (*db.User, error)
}

// MarketService defines the primary port for market data use cases
type MarketService interface {
	Headlines(ctx context.Context, q HeadlineQuery) []market.Headline
	SentimentSummary(ctx context.Context) market.SentimentSummary
	TrendingTopics(ctx context.Context) []string
	Signals(ctx context.Context) market.SignalBoard
	Indices(ctx context.Context) []market.IndexSnapshot
	MacroSnapshot(ctx context.Context) []market.MacroMetric
	RiskAlerts(ctx context.Context) []market.RiskAlert
	AlertFeed(ctx context.Context, count int) []market.OpsAlert
	MarketAnalysis(ctx context.Context) market.Analysis
	PortfolioPerformance(ctx context.Context, days int) []market.PortfolioPoint
	SectorExposure(ctx context.Context) []market.SectorExposure
	CompanySnapshot(ctx context.Context, ticker string) (market.CompanySnapshot, error)
	IntradayChart(ctx context.Context, ticker string) (market.ChartData, error)
	Prediction(ctx context.Context, ticker string) (market.PredictionModal, error)
}

// ResearchService defines the primary port for LLM-assisted research use cases
type ResearchService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Chat(ctx context.Context, userEmail, input string) (string, error)
	ChatHistory(ctx context.Context, userEmail string) ([]*db.ChatMessage, error)
	ClearChatHistory(ctx context.Context, userEmail string) error
}

// WatchlistService defines the primary port for watchlist management
type WatchlistService interface {
	ListWatchlists(ctx context.Context, userEmail string) ([]*db.Watchlist, error)
	CreateWatchlist(ctx context.Context, userEmail string, req CreateWatchlistRequest) (*db.Watchlist, error)
	DeleteWatchlist(ctx context.Context, userEmail, watchlistID string) error
}

// SystemService defines the primary port for host status reporting
type SystemService interface {
	GetSystemStats(ctx context.Context) (*system.Stats, error)
}

// ============================================================================
// Request Types
// ============================================================================

// SignUpRequest represents the request to create a new account
type SignUpRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// HeadlineQuery filters the live headline feed
type HeadlineQuery struct {
	Limit    int
	Category string
	Ticker   string
}

// CreateWatchlistRequest represents the request to create a watchlist
type CreateWatchlistRequest struct {
	Name    string   `json:"name" binding:"required"`
	Tickers []string `json:"tickers" binding:"required"`
}
