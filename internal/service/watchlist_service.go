package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/market"
	"github.com/finnews-portal/internal/validation"
)

// watchlistService implements the WatchlistService interface
type watchlistService struct {
	database *db.DB
	universe *market.Universe
	logger   *slog.Logger
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(database *db.DB, universe *market.Universe, logger *slog.Logger) domain.WatchlistService {
	return &watchlistService{
		database: database,
		universe: universe,
		logger:   logger,
	}
}

// ListWatchlists returns a user's watchlists. A user with none yet gets
// the default set seeded first, so the dashboard is never empty.
func (s *watchlistService) ListWatchlists(ctx context.Context, userEmail string) ([]*db.Watchlist, error) {
	lists, err := s.database.ListWatchlists(userEmail)
	if err != nil {
		return nil, domain.WrapDatabaseOperation("list watchlists", err)
	}
	if len(lists) > 0 {
		return lists, nil
	}

	for _, seed := range s.universe.DefaultWatchlists {
		w := db.NewWatchlist(userEmail, seed.Name, seed.Tickers)
		if err := s.database.CreateWatchlist(w); err != nil && !errors.Is(err, db.ErrDuplicate) {
			s.logger.WarnContext(ctx, "failed to seed default watchlist", "name", seed.Name, "error", err)
		}
	}

	lists, err = s.database.ListWatchlists(userEmail)
	if err != nil {
		return nil, domain.WrapDatabaseOperation("list watchlists", err)
	}
	return lists, nil
}

// CreateWatchlist creates a named watchlist for a user
func (s *watchlistService) CreateWatchlist(ctx context.Context, userEmail string, req domain.CreateWatchlistRequest) (*db.Watchlist, error) {
	name := strings.TrimSpace(req.Name)
	if err := validation.ValidateWatchlistName(name); err != nil {
		return nil, domain.WrapValidationError("name", err)
	}

	tickers := make([]string, 0, len(req.Tickers))
	for _, t := range req.Tickers {
		tickers = append(tickers, strings.ToUpper(strings.TrimSpace(t)))
	}
	if err := validation.ValidateWatchlistTickers(tickers); err != nil {
		return nil, domain.WrapValidationError("tickers", err)
	}

	w := db.NewWatchlist(userEmail, name, tickers)
	if err := s.database.CreateWatchlist(w); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, domain.ErrWatchlistAlreadyExists
		}
		s.logger.ErrorContext(ctx, "failed to create watchlist", "error", err)
		return nil, domain.WrapDatabaseOperation("create watchlist", err)
	}

	s.logger.InfoContext(ctx, "watchlist created", "watchlist_id", w.ID, "name", name)
	return w, nil
}

// DeleteWatchlist removes a user's watchlist by ID
func (s *watchlistService) DeleteWatchlist(ctx context.Context, userEmail, watchlistID string) error {
	if err := s.database.DeleteWatchlist(userEmail, watchlistID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return domain.ErrWatchlistNotFound
		}
		return domain.WrapDatabaseOperation("delete watchlist", err)
	}
	return nil
}
