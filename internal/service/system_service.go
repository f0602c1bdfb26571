package service

import (
	"context"
	"log/slog"

	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/system"
)

// systemService implements the SystemService interface
type systemService struct {
	collector *system.Collector
	logger    *slog.Logger
}

// NewSystemService creates a new system service
func NewSystemService(collector *system.Collector, logger *slog.Logger) domain.SystemService {
	return &systemService{
		collector: collector,
		logger:    logger,
	}
}

// GetSystemStats returns current host resource usage
func (s *systemService) GetSystemStats(ctx context.Context) (*system.Stats, error) {
	stats, err := s.collector.GetStats()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to collect system stats", "error", err)
		return nil, domain.WrapExternalService("system stats", err)
	}
	return stats, nil
}
