// Package health holds the readiness registry. Checks run concurrently,
// each under its own deadline, so one hung dependency cannot stall the
// readiness endpoint past the slowest allowed check.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/platform/fanout"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// DefaultCheckTimeout bounds a single check when no option overrides it.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry].
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-check deadline. Non-positive values keep
// the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name; nil means healthy. When two checkers share a name the one
// registered last wins. A check that outlives its deadline reports
// context.DeadlineExceeded even if the checker ignores ctx.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	timeout := r.checkTimeout
	r.mu.RUnlock()

	results := fanout.Run(ctx, len(checkers), checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, r.check(ctx, c, timeout)
	})

	out := make(map[string]error, len(checkers))
	for i, c := range checkers {
		out[c.Name()] = results[i].Err
	}
	return out
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", c.Name(), ctx.Err())
	}
}
