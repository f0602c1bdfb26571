package market

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Feed holds the current headline snapshot and regenerates it on a
// fixed cadence, standing in for a live news wire. Readers always see a
// complete snapshot; regeneration swaps it under the write lock.
type Feed struct {
	gen    *Generator
	count  int
	logger *slog.Logger

	mu        sync.RWMutex
	headlines []Headline
	updatedAt time.Time

	cron *cron.Cron
}

// NewFeed creates a feed and generates the initial snapshot
func NewFeed(gen *Generator, count int, logger *slog.Logger) *Feed {
	f := &Feed{
		gen:    gen,
		count:  count,
		logger: logger,
	}
	f.Refresh()
	return f
}

// Start schedules periodic regeneration at the given interval
func (f *Feed) Start(interval time.Duration) error {
	if f.cron != nil {
		return fmt.Errorf("feed already started")
	}
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), f.Refresh); err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}
	c.Start()
	f.cron = c
	f.logger.Info("market feed refresh scheduled", "interval", interval.String())
	return nil
}

// Stop cancels the scheduled regeneration
func (f *Feed) Stop() {
	if f.cron != nil {
		f.cron.Stop()
		f.cron = nil
	}
}

// Refresh regenerates the headline snapshot
func (f *Feed) Refresh() {
	headlines := f.gen.Headlines(f.count)

	f.mu.Lock()
	f.headlines = headlines
	f.updatedAt = time.Now().UTC()
	f.mu.Unlock()

	f.logger.Debug("market feed refreshed", "headlines", len(headlines))
}

// Headlines returns the current snapshot. The returned slice is shared;
// callers must not mutate it.
func (f *Feed) Headlines() []Headline {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.headlines
}

// UpdatedAt returns the time of the last snapshot refresh
func (f *Feed) UpdatedAt() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.updatedAt
}
