// Package appctx provides a per-operation action queue for orchestration
// services.
//
// Actions are staged in order and executed by Commit. When an action fails,
// every action that already completed is rolled back in reverse order and
// the failure is reported as a *CommitError describing which step failed and
// whether any rollback failed:
//
//	rc := appctx.New(ctx)
//	_ = rc.AddAction(acceptProposal)
//	_ = rc.AddAction(startProject)
//	err := rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"sync"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// RequestContext wraps a context.Context with an ordered action queue.
// Create one per operation; it must not be reused after Commit.
type RequestContext struct {
	context.Context
	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// New creates a RequestContext wrapping ctx with an empty queue.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx}
}

// AddAction stages an action for execution by Commit.
// Returns ErrNilAction if action is nil, or ErrAlreadyCommitted if the
// RequestContext has already been committed.
//
// AddAction is safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Len returns the number of staged actions.
func (rc *RequestContext) Len() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}
