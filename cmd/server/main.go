package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/finnews-portal/internal/config"
	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/http"
	"github.com/finnews-portal/internal/logger"
	"github.com/finnews-portal/internal/market"
)

func main() {
	// Load .env file if it exists (optional, won't error if missing)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.Init(cfg.Environment)

	if cfg.OpenAI.Status.Enabled() {
		appLogger.Info("OpenAI research features enabled", "model", cfg.OpenAI.Model)
	} else {
		appLogger.Warn("OPENAI_API_KEY not set - research features fall back to fixed responses")
	}

	// Initialize database
	database, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Market universe and synthetic feed. The embedded universe can be
	// overridden with a file for custom company/index sets.
	universe, err := loadUniverse(cfg.Market.UniversePath)
	if err != nil {
		log.Fatalf("Failed to load market universe: %v", err)
	}

	gen := market.NewGenerator(universe)
	feed := market.NewFeed(gen, cfg.Market.HeadlineCount, logger.Component("market"))
	if err := feed.Start(cfg.Market.RefreshInterval); err != nil {
		log.Fatalf("Failed to start market feed: %v", err)
	}
	defer feed.Stop()

	// Create HTTP server
	server := http.NewServer(cfg, database, universe, feed, gen)

	// Start server
	appLogger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.Run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadUniverse(path string) (*market.Universe, error) {
	if path != "" {
		return market.LoadUniverse(path)
	}
	return market.DefaultUniverse()
}
