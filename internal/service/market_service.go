package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/market"
	"github.com/finnews-portal/internal/validation"
)

const (
	defaultHeadlineLimit = 20
	maxHeadlineLimit     = 200

	defaultPortfolioDays = 45
	maxPortfolioDays     = 365
)

// marketService implements the MarketService interface on top of the
// synthetic feed and generator.
type marketService struct {
	feed   *market.Feed
	gen    *market.Generator
	logger *slog.Logger
}

// NewMarketService creates a new market service
func NewMarketService(feed *market.Feed, gen *market.Generator, logger *slog.Logger) domain.MarketService {
	return &marketService{
		feed:   feed,
		gen:    gen,
		logger: logger,
	}
}

// Headlines returns the current feed snapshot filtered by the query
func (s *marketService) Headlines(ctx context.Context, q domain.HeadlineQuery) []market.Headline {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultHeadlineLimit
	}
	if limit > maxHeadlineLimit {
		limit = maxHeadlineLimit
	}

	category := strings.TrimSpace(q.Category)
	ticker := strings.ToUpper(strings.TrimSpace(q.Ticker))

	result := make([]market.Headline, 0, limit)
	for _, h := range s.feed.Headlines() {
		if category != "" && !strings.EqualFold(h.Category, category) {
			continue
		}
		if ticker != "" && h.Ticker != ticker {
			continue
		}
		result = append(result, h)
		if len(result) == limit {
			break
		}
	}
	return result
}

// SentimentSummary aggregates the current feed by stance and coverage
func (s *marketService) SentimentSummary(ctx context.Context) market.SentimentSummary {
	return market.SentimentSummaryOf(s.feed.Headlines())
}

// TrendingTopics lists the distinct impact tags in the current feed
func (s *marketService) TrendingTopics(ctx context.Context) []string {
	return market.TrendingTopics(s.feed.Headlines())
}

// Signals returns the recommendation cards and sentiment bands
func (s *marketService) Signals(ctx context.Context) market.SignalBoard {
	return s.gen.Signals()
}

// Indices returns a snapshot for each tracked market index
func (s *marketService) Indices(ctx context.Context) []market.IndexSnapshot {
	return s.gen.Indices()
}

// MacroSnapshot returns the macro metrics strip
func (s *marketService) MacroSnapshot(ctx context.Context) []market.MacroMetric {
	return s.gen.MacroSnapshot()
}

// RiskAlerts returns the sidebar risk warnings
func (s *marketService) RiskAlerts(ctx context.Context) []market.RiskAlert {
	return s.gen.RiskAlerts()
}

// AlertFeed returns count operations alerts
func (s *marketService) AlertFeed(ctx context.Context, count int) []market.OpsAlert {
	if count <= 0 {
		count = 10
	}
	if count > 50 {
		count = 50
	}
	return s.gen.AlertFeed(count)
}

// MarketAnalysis rolls the current feed up into the dashboard header
func (s *marketService) MarketAnalysis(ctx context.Context) market.Analysis {
	return market.Analyze(s.feed.Headlines(), s.feed.UpdatedAt())
}

// PortfolioPerformance returns the synthetic portfolio curve
func (s *marketService) PortfolioPerformance(ctx context.Context, days int) []market.PortfolioPoint {
	if days <= 0 {
		days = defaultPortfolioDays
	}
	if days > maxPortfolioDays {
		days = maxPortfolioDays
	}
	return s.gen.PortfolioSeries(days)
}

// SectorExposure returns the sector weight/PnL rows
func (s *marketService) SectorExposure(ctx context.Context) []market.SectorExposure {
	return s.gen.SectorExposure()
}

// CompanySnapshot returns a quote-style summary for a ticker
func (s *marketService) CompanySnapshot(ctx context.Context, ticker string) (market.CompanySnapshot, error) {
	normalized, err := s.normalizeTicker(ticker)
	if err != nil {
		return market.CompanySnapshot{}, err
	}
	return s.gen.CompanySnapshot(normalized), nil
}

// IntradayChart returns the intraday chart payload for a ticker
func (s *marketService) IntradayChart(ctx context.Context, ticker string) (market.ChartData, error) {
	normalized, err := s.normalizeTicker(ticker)
	if err != nil {
		return market.ChartData{}, err
	}
	return s.gen.IntradayChart(normalized), nil
}

// Prediction returns the prediction modal payload for a ticker
func (s *marketService) Prediction(ctx context.Context, ticker string) (market.PredictionModal, error) {
	normalized, err := s.normalizeTicker(ticker)
	if err != nil {
		return market.PredictionModal{}, err
	}
	return s.gen.PredictionFor(normalized, s.feed.Headlines()), nil
}

func (s *marketService) normalizeTicker(ticker string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))
	if err := validation.ValidateTicker(normalized); err != nil {
		return "", domain.WrapValidationError("ticker", err)
	}
	return normalized, nil
}
