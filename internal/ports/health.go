package ports

import "context"

// HealthChecker reports whether one dependency of the service can be used.
// The entity store and the notification webhook both implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, for example
	// "entity-store".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give up
	// once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcome keyed by
	// checker name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
