// Package fanout runs one function across a slice of items with bounded
// concurrency, keeping one result per item in input order. Sweeps and
// readiness checks use it so that a slow or failing item never hides the
// outcome of the others.
package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for one item. Err is set when fn failed,
// panicked, or never ran because ctx was done first.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// blocks until all of them return. An item whose turn comes after ctx is
// done records ctx.Err() without calling fn. A panic inside fn is recorded
// as that item's error. Values of maxWorkers below 1 are treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			results[i] = call(ctx, item, fn)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if err := ctx.Err(); err != nil {
		return Result[R]{Err: err}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", v)}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
