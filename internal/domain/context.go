package domain

import "context"

// Action represents a single executable operation with rollback capability.
// The paired-transition coordinator stages one Action per entity and relies
// on Rollback to compensate when a later step fails.
type Action interface {
	// Execute performs the action.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "proposal 12 -> accepted").
	Description() string
}

type correlationKey struct{}

// WithCorrelationID returns ctx carrying the correlation id of the inbound
// request or job. Events emitted under ctx record it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFrom returns the correlation id carried by ctx, or "".
func CorrelationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
