package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// EntityStore is the durable mapping from (kind, id) to entity record.
// Implementations return copies: mutating a returned entity never changes
// stored state.
type EntityStore interface {
	// Get returns the entity stored under kind and id.
	// Returns domain.ErrNotFound if no such entity exists.
	Get(ctx context.Context, kind domain.Kind, id uint64) (domain.Entity, error)

	// Put writes e if the stored version equals expectedVersion. An
	// expectedVersion of zero means the entity must not exist yet. On success
	// the entity's version is advanced to expectedVersion+1.
	// Returns domain.ErrConflict on a version mismatch.
	Put(ctx context.Context, e domain.Entity, expectedVersion uint64) error

	// NextID reserves a fresh id for kind.
	NextID(ctx context.Context, kind domain.Kind) (uint64, error)

	// ListByIndex returns entities of kind whose index equals key, ordered
	// by id.
	ListByIndex(ctx context.Context, kind domain.Kind, index domain.Index, key string) ([]domain.Entity, error)
}

// Clock supplies wall-clock readings for timestamps and deadline checks.
type Clock interface {
	Now() time.Time
}

// EventPublisher delivers lifecycle facts to collaborators such as the audit
// log and notification delivery.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Authorizer is the authorization gate evaluated before every
// caller-initiated transition.
type Authorizer interface {
	// Authorize returns nil if caller may move subject to status to.
	// parent is the related entity for child kinds and nil otherwise.
	// Returns an error wrapping domain.ErrUnauthorized on denial.
	Authorize(caller domain.Principal, subject domain.Entity, to domain.Status, parent domain.Entity) error
}
