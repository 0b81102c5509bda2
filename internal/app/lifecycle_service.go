package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/kinds"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.LifecycleService = (*LifecycleService)(nil)

// LifecycleService implements ports.LifecycleService: kind-agnostic reads
// and the generic single-entity transition.
type LifecycleService struct {
	core   Core
	logger *slog.Logger
}

// NewLifecycleService creates a LifecycleService. A nil logger discards output.
func NewLifecycleService(core Core, logger *slog.Logger) *LifecycleService {
	return &LifecycleService{core: core, logger: orDiscard(logger)}
}

// Get returns the entity of kind with id.
func (s *LifecycleService) Get(ctx context.Context, kind domain.Kind, id uint64) (domain.Entity, error) {
	if _, err := kinds.Graph(kind); err != nil {
		return nil, err
	}
	return s.core.store().Get(ctx, kind, id)
}

// List returns entities of kind matching filter, ordered by id.
func (s *LifecycleService) List(ctx context.Context, kind domain.Kind, filter domain.Filter) ([]domain.Entity, error) {
	graph, err := kinds.Graph(kind)
	if err != nil {
		return nil, err
	}
	return listEntities(ctx, s.core.store(), graph, filter)
}

// Transition applies one caller-initiated transition. Paired edges and
// payments are refused: they have their own operations.
func (s *LifecycleService) Transition(ctx context.Context, caller domain.Principal, kind domain.Kind, id uint64, to domain.Status) (domain.Entity, error) {
	s.logger.InfoContext(ctx, "transitioning entity",
		slog.String("kind", string(kind)),
		slog.Uint64("id", id),
		slog.String("to", string(to)),
	)

	if kind == domain.KindPayment {
		return nil, fmt.Errorf("%w: payments move only through the escrow operations", domain.ErrInvalidTransition)
	}
	graph, err := kinds.Graph(kind)
	if err != nil {
		return nil, err
	}
	if !graph.Has(to) {
		return nil, fmt.Errorf("%w: %q is not a %s status", domain.ErrInvalidTransition, to, kind)
	}

	e, err := s.core.store().Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	parent, err := s.core.parentOf(ctx, e)
	if err != nil {
		return nil, err
	}
	if err := s.core.Gate.Authorize(caller, e, to, parent); err != nil {
		return nil, err
	}
	if edge, ok := e.Graph().Edge(e.Meta().Status, to); ok && edge.Paired {
		return nil, fmt.Errorf("%w: %s %s -> %s is applied together with its related entity",
			domain.ErrInvalidTransition, kind, edge.From, edge.To)
	}

	next, err := s.core.Machine.Transition(ctx, lifecycle.Change{
		Actor:     caller,
		Operation: "transition " + string(kind),
		Entity:    e,
		To:        to,
	})
	if err != nil {
		logFailure(ctx, s.logger, "Transition", kind, id, err)
		return nil, err
	}
	return next, nil
}
