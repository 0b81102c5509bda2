// Package app provides application services that orchestrate marketplace use
// cases: loading entities through the store port, evaluating the
// authorization gate, and applying transitions through the lifecycle
// machine and coordinator.
package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Core bundles the lifecycle machinery shared by every service.
type Core struct {
	Machine     *lifecycle.Machine
	Coordinator *lifecycle.Coordinator
	Gate        ports.Authorizer
}

// NewCore wires a coordinator around machine and gate. metrics may be nil.
func NewCore(machine *lifecycle.Machine, gate ports.Authorizer, metrics *telemetry.Metrics) Core {
	return Core{
		Machine:     machine,
		Coordinator: lifecycle.NewCoordinator(machine, gate, metrics),
		Gate:        gate,
	}
}

func (c Core) store() ports.EntityStore { return c.Machine.Store() }

// transition authorizes caller and applies a single-entity transition.
func (c Core) transition(ctx context.Context, op string, caller domain.Principal, e domain.Entity, to domain.Status, parent domain.Entity) (domain.Entity, error) {
	if err := c.Gate.Authorize(caller, e, to, parent); err != nil {
		return nil, err
	}
	return c.Machine.Transition(ctx, lifecycle.Change{
		Actor:     caller,
		Operation: op,
		Entity:    e,
		To:        to,
	})
}

// parentOf loads the entity a child kind hangs off. It returns nil for kinds
// without a parent.
func (c Core) parentOf(ctx context.Context, e domain.Entity) (domain.Entity, error) {
	var ref domain.Ref
	switch v := e.(type) {
	case *work.Proposal:
		ref = domain.Ref{Kind: domain.KindProject, ID: v.ProjectID}
	case *bounty.Submission:
		ref = domain.Ref{Kind: domain.KindBounty, ID: v.BountyID}
	case *hackathon.Entry:
		ref = domain.Ref{Kind: domain.KindHackathon, ID: v.HackathonID}
	default:
		return nil, nil
	}
	parent, err := c.store().Get(ctx, ref.Kind, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("loading parent of %s %d: %w", e.Kind(), e.Meta().ID, err)
	}
	return parent, nil
}

// listEntities returns the entities of kind selected by filter, ordered by
// id. The zero filter walks the status index once per declared status.
func listEntities(ctx context.Context, store ports.EntityStore, graph *domain.Graph, filter domain.Filter) ([]domain.Entity, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if !filter.IsZero() {
		return store.ListByIndex(ctx, graph.Kind(), filter.Index, filter.Key)
	}

	var out []domain.Entity
	for _, s := range graph.Statuses() {
		page, err := store.ListByIndex(ctx, graph.Kind(), domain.IndexStatus, string(s))
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
	}
	slices.SortFunc(out, func(a, b domain.Entity) int {
		return cmp.Compare(a.Meta().ID, b.Meta().ID)
	})
	return out, nil
}

func list[E domain.Entity](ctx context.Context, store ports.EntityStore, graph *domain.Graph, filter domain.Filter) ([]E, error) {
	all, err := listEntities(ctx, store, graph, filter)
	if err != nil {
		return nil, err
	}
	return lifecycle.AsAll[E](all)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

func logFailure(ctx context.Context, logger *slog.Logger, op string, kind domain.Kind, id uint64, err error) {
	logger.ErrorContext(ctx, "operation failed",
		slog.String("operation", op),
		logging.Entity(string(kind), id),
		slog.Any("error", err),
	)
}
