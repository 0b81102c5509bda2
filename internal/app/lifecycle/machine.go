// Package lifecycle implements the status state machine and the
// paired-transition coordinator shared by every entity kind.
//
// Every write goes through the entity store with the version read by the
// caller, so two writers racing on one entity produce exactly one winner;
// the loser observes domain.ErrStale and may retry.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Mutation adjusts non-status fields of the copy being written, such as the
// freelancer assigned to a project on acceptance.
type Mutation func(domain.Entity)

// Change is one caller-visible single-entity transition.
type Change struct {
	Actor     domain.Principal
	Operation string
	Entity    domain.Entity
	To        domain.Status
	Mutate    Mutation
}

// Machine applies validated status transitions with optimistic concurrency.
// It holds no mutable state and is safe for concurrent use.
type Machine struct {
	store   ports.EntityStore
	clock   ports.Clock
	events  ports.EventPublisher
	metrics *telemetry.Metrics
}

// Option configures a Machine.
type Option func(*Machine)

// WithEvents publishes lifecycle events to p.
func WithEvents(p ports.EventPublisher) Option {
	return func(m *Machine) { m.events = p }
}

// WithMetrics records transition metrics.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *Machine) { m.metrics = metrics }
}

// NewMachine creates a Machine over store and clock.
func NewMachine(store ports.EntityStore, clock ports.Clock, opts ...Option) *Machine {
	m := &Machine{store: store, clock: clock}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the entity store the machine writes to.
func (m *Machine) Store() ports.EntityStore { return m.store }

// Clock returns the machine's time source.
func (m *Machine) Clock() ports.Clock { return m.clock }

// Create assigns an id, the kind's initial status and timestamps to a copy of
// e and stores it. Returns domain.ErrAlreadyExists if the id is taken.
func (m *Machine) Create(ctx context.Context, actor domain.Principal, e domain.Entity) (domain.Entity, error) {
	id, err := m.store.NextID(ctx, e.Kind())
	if err != nil {
		return nil, fmt.Errorf("reserving %s id: %w", e.Kind(), err)
	}

	next := e.Clone()
	h := next.Meta()
	now := m.clock.Now()
	h.ID = id
	h.Status = next.Graph().Initial()
	h.Version = 0
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := m.store.Put(ctx, next, 0); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: %s %d", domain.ErrAlreadyExists, next.Kind(), id)
		}
		return nil, err
	}

	m.Emit(ctx, domain.Event{
		Type:      domain.EventCreated,
		Operation: "create " + string(next.Kind()),
		Actor:     actor,
		Subject:   domain.RefOf(next),
		To:        h.Status,
		At:        now,
	})
	return next, nil
}

// Step validates from -> to against the entity's graph and writes a copy of e
// with the new status, conditioned on the version e was read at. The input
// entity is never modified. Store conflicts are reported as domain.ErrStale;
// other store errors are returned unchanged.
func (m *Machine) Step(ctx context.Context, e domain.Entity, to domain.Status, mutate ...Mutation) (domain.Entity, error) {
	from := e.Meta().Status
	if err := e.Graph().Check(from, to); err != nil {
		m.metrics.RecordTransition(ctx, string(e.Kind()), string(to), "invalid")
		return nil, err
	}

	next := e.Clone()
	for _, fn := range mutate {
		if fn != nil {
			fn(next)
		}
	}
	h := next.Meta()
	h.Status = to
	h.UpdatedAt = m.clock.Now()

	if err := m.put(ctx, next, e.Meta().Version); err != nil {
		return nil, err
	}
	m.metrics.RecordTransition(ctx, string(e.Kind()), string(to), telemetry.ResultSuccess)
	return next, nil
}

// Transition applies c as a single-entity transition and emits an event.
func (m *Machine) Transition(ctx context.Context, c Change) (domain.Entity, error) {
	next, err := m.Step(ctx, c.Entity, c.To, c.Mutate)
	if err != nil {
		return nil, err
	}

	m.Emit(ctx, domain.Event{
		Type:      domain.EventTransitioned,
		Operation: c.Operation,
		Actor:     c.Actor,
		Subject:   domain.RefOf(next),
		From:      c.Entity.Meta().Status,
		To:        c.To,
		At:        next.Meta().UpdatedAt,
	})
	return next, nil
}

// Restore writes prior back over current as a compensating action. It does
// not consult the transition graph: it undoes a transition this process
// applied moments earlier. Returns domain.ErrStale if current has been
// modified since.
func (m *Machine) Restore(ctx context.Context, current, prior domain.Entity) (domain.Entity, error) {
	next := prior.Clone()
	h := next.Meta()
	h.Version = current.Meta().Version
	h.UpdatedAt = m.clock.Now()

	if err := m.put(ctx, next, current.Meta().Version); err != nil {
		return nil, err
	}
	m.metrics.RecordTransition(ctx, string(next.Kind()), string(h.Status), "restored")
	return next, nil
}

func (m *Machine) put(ctx context.Context, e domain.Entity, expected uint64) error {
	err := m.store.Put(ctx, e, expected)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConflict) {
		m.metrics.RecordTransition(ctx, string(e.Kind()), string(e.Meta().Status), "stale")
		return fmt.Errorf("%w: %s %d changed since version %d", domain.ErrStale, e.Kind(), e.Meta().ID, expected)
	}
	m.metrics.RecordTransition(ctx, string(e.Kind()), string(e.Meta().Status), telemetry.ResultError)
	return err
}

// Emit publishes evt, filling in its id and timestamp. Delivery failures are
// logged and counted; they never fail the operation that produced the event.
func (m *Machine) Emit(ctx context.Context, evt domain.Event) {
	if m.events == nil {
		return
	}
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.At.IsZero() {
		evt.At = m.clock.Now()
	}
	if evt.CorrelationID == "" {
		evt.CorrelationID = domain.CorrelationIDFrom(ctx)
	}
	if err := m.events.Publish(ctx, evt); err != nil {
		m.metrics.RecordPublishFailure(ctx, string(evt.Type))
		logging.FromContext(ctx).WarnContext(ctx, "failed to publish lifecycle event",
			slog.String("operation", evt.Operation),
			slog.String("event_type", string(evt.Type)),
			logging.Entity(string(evt.Subject.Kind), evt.Subject.ID),
			slog.Any("error", err),
		)
	}
}

// Load reads the entity of kind with id and asserts its concrete type.
func Load[E domain.Entity](ctx context.Context, store ports.EntityStore, kind domain.Kind, id uint64) (E, error) {
	var zero E
	e, err := store.Get(ctx, kind, id)
	if err != nil {
		return zero, err
	}
	return As[E](e)
}

// As asserts the concrete type of e.
func As[E domain.Entity](e domain.Entity) (E, error) {
	typed, ok := e.(E)
	if !ok {
		var zero E
		return zero, fmt.Errorf("%s %d: unexpected entity type %T", e.Kind(), e.Meta().ID, e)
	}
	return typed, nil
}

// AsAll asserts the concrete type of every entity in list.
func AsAll[E domain.Entity](list []domain.Entity) ([]E, error) {
	out := make([]E, 0, len(list))
	for _, e := range list {
		typed, err := As[E](e)
		if err != nil {
			return nil, err
		}
		out = append(out, typed)
	}
	return out, nil
}
