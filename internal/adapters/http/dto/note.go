package dto

import (
	"context"
	"sync"
)

// ProblemNote records the problem written for a request so that outer
// middleware can log and trace it after the handler returns. The handler may
// run on another goroutine under the timeout middleware, so access is locked.
type ProblemNote struct {
	mu     sync.Mutex
	code   string
	reason string
}

type problemNoteKey struct{}

// WithProblemNote returns a context carrying a note, reusing one already
// present so every middleware layer observes the same record.
func WithProblemNote(ctx context.Context) (context.Context, *ProblemNote) {
	if n, ok := ctx.Value(problemNoteKey{}).(*ProblemNote); ok {
		return ctx, n
	}
	n := &ProblemNote{}
	return context.WithValue(ctx, problemNoteKey{}, n), n
}

// Get returns the recorded problem code and partial failure reason. Both are
// empty when no problem was written.
func (n *ProblemNote) Get() (code, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.code, n.reason
}

func (n *ProblemNote) set(code, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.code = code
	n.reason = reason
}

func noteProblem(ctx context.Context, resp ErrorResponse) {
	if n, ok := ctx.Value(problemNoteKey{}).(*ProblemNote); ok {
		n.set(resp.Code, resp.Reason)
	}
}
