package market

import (
	"log/slog"
	"testing"
	"time"
)

func TestFeed_InitialSnapshot(t *testing.T) {
	g := testGenerator(t)
	feed := NewFeed(g, 25, slog.Default())

	headlines := feed.Headlines()
	if len(headlines) != 25 {
		t.Fatalf("Expected 25 headlines, got %d", len(headlines))
	}
	if feed.UpdatedAt().IsZero() {
		t.Error("Expected updated-at to be set after initial refresh")
	}
}

func TestFeed_Refresh(t *testing.T) {
	g := testGenerator(t)
	feed := NewFeed(g, 10, slog.Default())

	before := feed.UpdatedAt()
	time.Sleep(time.Millisecond)
	feed.Refresh()

	if !feed.UpdatedAt().After(before) {
		t.Error("Expected refresh to advance the snapshot timestamp")
	}
	if len(feed.Headlines()) != 10 {
		t.Errorf("Expected 10 headlines after refresh, got %d", len(feed.Headlines()))
	}
}

func TestFeed_StartTwice(t *testing.T) {
	g := testGenerator(t)
	feed := NewFeed(g, 5, slog.Default())
	defer feed.Stop()

	if err := feed.Start(time.Minute); err != nil {
		t.Fatalf("Expected no error on first start, got %v", err)
	}
	if err := feed.Start(time.Minute); err == nil {
		t.Error("Expected error on second start, got nil")
	}
}

func TestFeed_ConcurrentReads(t *testing.T) {
	g := testGenerator(t)
	feed := NewFeed(g, 20, slog.Default())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			feed.Refresh()
		}
		close(done)
	}()

	for i := 0; i < 100; i++ {
		if len(feed.Headlines()) != 20 {
			t.Error("Expected a complete snapshot during concurrent refresh")
		}
	}
	<-done
}
