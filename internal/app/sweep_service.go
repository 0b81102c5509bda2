package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/kinds"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/fanout"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.SweepService = (*SweepService)(nil)

// DefaultSweepWorkers bounds concurrent transitions when no worker count is
// configured.
const DefaultSweepWorkers = 4

// SweepService expires entities whose deadlines have passed. It runs without
// a caller, so the authorization gate does not apply, but every move still
// goes through the lifecycle machine and its transition graph.
type SweepService struct {
	machine *lifecycle.Machine
	workers int
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewSweepService creates a SweepService. workers below one fall back to
// DefaultSweepWorkers; metrics and logger may be nil.
func NewSweepService(machine *lifecycle.Machine, workers int, metrics *telemetry.Metrics, logger *slog.Logger) *SweepService {
	if workers < 1 {
		workers = DefaultSweepWorkers
	}
	return &SweepService{machine: machine, workers: workers, metrics: metrics, logger: orDiscard(logger)}
}

// Sweep moves every entity of kind whose deadline passed before now to the
// kind's expiry status and returns how many moved. Entities that are
// already terminal produce no candidates, and entities changed by a
// concurrent writer are skipped; a later sweep picks them up if they still
// qualify.
func (s *SweepService) Sweep(ctx context.Context, kind domain.Kind, now time.Time) (int, error) {
	start := time.Now()
	expiry, ok := kinds.ExpiryFor(kind)
	if !ok {
		return 0, &domain.ValidationError{Fields: map[string]string{"kind": fmt.Sprintf("%s has no deadline to sweep", kind)}}
	}

	candidates, err := s.candidates(ctx, kind, expiry)
	if err != nil {
		s.metrics.RecordSweep(ctx, string(kind), 0, time.Since(start), err)
		return 0, err
	}

	results := fanout.Run(ctx, s.workers, candidates, func(ctx context.Context, e domain.Entity) (bool, error) {
		to, due := expiry.Target(e, now)
		if !due {
			return false, nil
		}
		_, err := s.machine.Transition(ctx, lifecycle.Change{
			Actor:     domain.System,
			Operation: "sweep " + string(kind),
			Entity:    e,
			To:        to,
		})
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, domain.ErrStale), errors.Is(err, domain.ErrInvalidTransition):
			s.logger.DebugContext(ctx, "sweep skipped entity",
				logging.Entity(string(kind), e.Meta().ID),
				slog.Any("error", err),
			)
			return false, nil
		default:
			return false, fmt.Errorf("%s %d: %w", kind, e.Meta().ID, err)
		}
	})

	count := 0
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		if r.Value {
			count++
		}
	}
	err = errors.Join(errs...)
	s.metrics.RecordSweep(ctx, string(kind), count, time.Since(start), err)

	if err != nil {
		s.logger.ErrorContext(ctx, "sweep finished with errors",
			slog.String("operation", "Sweep"),
			slog.String("kind", string(kind)),
			slog.Int("transitioned", count),
			slog.Any("error", err),
		)
		return count, err
	}
	s.logger.InfoContext(ctx, "sweep finished",
		slog.String("kind", string(kind)),
		slog.Int("candidates", len(candidates)),
		slog.Int("transitioned", count),
	)
	return count, nil
}

func (s *SweepService) candidates(ctx context.Context, kind domain.Kind, expiry kinds.Expiry) ([]domain.Entity, error) {
	store := s.machine.Store()
	var out []domain.Entity
	for _, status := range expiry.Statuses {
		page, err := store.ListByIndex(ctx, kind, domain.IndexStatus, string(status))
		if err != nil {
			return nil, fmt.Errorf("listing %s %s: %w", status, kind, err)
		}
		out = append(out, page...)
	}
	return out, nil
}
