package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/marketplace-core/internal/app/context"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Pair describes two related transitions applied as one unit. The child is
// always written first.
type Pair struct {
	Operation string
	Caller    domain.Principal

	Child       domain.Entity
	ChildTo     domain.Status
	ChildMutate Mutation

	Parent       domain.Entity
	ParentTo     domain.Status
	ParentMutate Mutation
}

// Coordinator applies paired transitions. When the parent write fails after
// the child was written, the child is restored to its prior state and a
// *domain.PartialFailureError is returned.
type Coordinator struct {
	machine *Machine
	gate    ports.Authorizer
	metrics *telemetry.Metrics
}

// NewCoordinator creates a Coordinator. metrics may be nil.
func NewCoordinator(machine *Machine, gate ports.Authorizer, metrics *telemetry.Metrics) *Coordinator {
	return &Coordinator{machine: machine, gate: gate, metrics: metrics}
}

// Apply authorizes and validates both transitions before writing anything,
// then writes child and parent in that order. It returns the written copies.
func (c *Coordinator) Apply(ctx context.Context, p Pair) (domain.Entity, domain.Entity, error) {
	logger := logging.FromContext(ctx)

	if err := c.gate.Authorize(p.Caller, p.Child, p.ChildTo, p.Parent); err != nil {
		return nil, nil, err
	}
	if err := c.gate.Authorize(p.Caller, p.Parent, p.ParentTo, nil); err != nil {
		return nil, nil, err
	}
	if err := p.Child.Graph().Check(p.Child.Meta().Status, p.ChildTo); err != nil {
		return nil, nil, err
	}
	if err := p.Parent.Graph().Check(p.Parent.Meta().Status, p.ParentTo); err != nil {
		return nil, nil, err
	}

	child := &stepAction{machine: c.machine, entity: p.Child, to: p.ChildTo, mutate: p.ChildMutate}
	parent := &stepAction{machine: c.machine, entity: p.Parent, to: p.ParentTo, mutate: p.ParentMutate}

	rc := appctx.New(ctx)
	if err := errors.Join(rc.AddAction(child), rc.AddAction(parent)); err != nil {
		return nil, nil, fmt.Errorf("staging %s: %w", p.Operation, err)
	}

	err := rc.Commit(ctx)
	if err == nil {
		logger.InfoContext(ctx, "paired transition applied",
			slog.String("operation", p.Operation),
			logging.Entity(string(p.Child.Kind()), p.Child.Meta().ID),
			slog.String("child_to", string(p.ChildTo)),
			logging.EntityAs("parent", string(p.Parent.Kind()), p.Parent.Meta().ID,
				slog.String("to", string(p.ParentTo)),
			),
		)
		c.machine.Emit(ctx, pairEvent(p, domain.EventPairApplied, ""))
		return child.result, parent.result, nil
	}

	var cerr *appctx.CommitError
	if !errors.As(err, &cerr) {
		return nil, nil, err
	}
	if cerr.Applied() == 0 {
		return nil, nil, cerr.Err
	}

	pf := &domain.PartialFailureError{
		Operation:   p.Operation,
		Reason:      domain.ReasonRolledBack,
		Applied:     domain.RefOf(p.Child),
		Failed:      domain.RefOf(p.Parent),
		Cause:       cerr.Err,
		RollbackErr: errors.Join(cerr.RollbackErrs...),
	}
	if !cerr.RolledBack() {
		pf.Reason = domain.ReasonNeedsReconciliation
	}

	logger.ErrorContext(ctx, "paired transition failed after first step",
		slog.String("operation", p.Operation),
		slog.String("reason", string(pf.Reason)),
		logging.Entity(string(p.Child.Kind()), p.Child.Meta().ID),
		slog.Any("error", pf),
	)
	c.metrics.RecordPairedFailure(ctx, p.Operation, string(pf.Reason))

	evt := pairEvent(p, domain.EventPartialFailure, pf.Reason)
	evt.Detail = pf.Error()
	c.machine.Emit(ctx, evt)

	return nil, nil, pf
}

func pairEvent(p Pair, typ domain.EventType, reason domain.PartialFailureReason) domain.Event {
	parent := domain.RefOf(p.Parent)
	return domain.Event{
		Type:        typ,
		Operation:   p.Operation,
		Actor:       p.Caller,
		Subject:     domain.RefOf(p.Child),
		From:        p.Child.Meta().Status,
		To:          p.ChildTo,
		Related:     &parent,
		RelatedFrom: p.Parent.Meta().Status,
		RelatedTo:   p.ParentTo,
		Reason:      reason,
	}
}

// stepAction adapts one half of a pair to the appctx commit queue.
type stepAction struct {
	machine *Machine
	entity  domain.Entity
	to      domain.Status
	mutate  Mutation
	result  domain.Entity
}

func (a *stepAction) Execute(ctx context.Context) error {
	next, err := a.machine.Step(ctx, a.entity, a.to, a.mutate)
	if err != nil {
		return err
	}
	a.result = next
	return nil
}

func (a *stepAction) Rollback(ctx context.Context) error {
	_, err := a.machine.Restore(ctx, a.result, a.entity)
	return err
}

func (a *stepAction) Description() string {
	return fmt.Sprintf("%s %d -> %s", a.entity.Kind(), a.entity.Meta().ID, a.to)
}
