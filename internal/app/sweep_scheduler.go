package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// SweepScheduler runs a sweep of each configured kind on a fixed interval.
type SweepScheduler struct {
	sweeper  ports.SweepService
	clock    ports.Clock
	interval time.Duration
	kinds    []domain.Kind
	logger   *slog.Logger
}

// NewSweepScheduler creates a scheduler sweeping kinds every interval.
func NewSweepScheduler(sweeper ports.SweepService, clock ports.Clock, interval time.Duration, kinds []domain.Kind, logger *slog.Logger) *SweepScheduler {
	return &SweepScheduler{
		sweeper:  sweeper,
		clock:    clock,
		interval: interval,
		kinds:    kinds,
		logger:   orDiscard(logger),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
// Sweep errors are logged; they do not stop the schedule.
func (s *SweepScheduler) Run(ctx context.Context) {
	s.logger.InfoContext(ctx, "sweep scheduler started",
		slog.Duration("interval", s.interval),
		slog.Any("kinds", s.kinds),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.RunOnce(ctx)
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "sweep scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce sweeps every configured kind at the clock's current time and
// returns the number of entities moved per kind.
func (s *SweepScheduler) RunOnce(ctx context.Context) map[domain.Kind]int {
	now := s.clock.Now()
	moved := make(map[domain.Kind]int, len(s.kinds))
	for _, kind := range s.kinds {
		if ctx.Err() != nil {
			break
		}
		n, err := s.sweeper.Sweep(ctx, kind, now)
		moved[kind] = n
		if err != nil {
			s.logger.ErrorContext(ctx, "scheduled sweep failed",
				slog.String("operation", "SweepScheduler"),
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}
	return moved
}
