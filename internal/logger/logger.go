package logger

import (
	"log/slog"
	"os"
)

// Init configures the process-wide slog logger for the given environment
// and returns it. Development gets a verbose text handler with source
// locations; everything else gets JSON for structured log collection.
func Init(environment string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if environment == "development" {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}

// Component returns a logger tagged with the originating component name.
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}
