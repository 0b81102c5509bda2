package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
)

// CommitError describes a failed Commit. Step is the 1-based position of the
// action that failed; actions 1..Step-1 had completed and were rolled back.
type CommitError struct {
	Step         int
	Total        int
	Action       string
	Err          error
	RollbackErrs []error
}

func (e *CommitError) Error() string {
	msg := fmt.Sprintf("executing %s: %v", e.Action, e.Err)
	if len(e.RollbackErrs) > 0 {
		msg += fmt.Sprintf(" (rollback: %v)", errors.Join(e.RollbackErrs...))
	}
	return msg
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Applied returns how many actions had completed before the failure.
func (e *CommitError) Applied() int {
	return e.Step - 1
}

// RolledBack reports whether every completed action was reverted.
func (e *CommitError) RolledBack() bool {
	return len(e.RollbackErrs) == 0
}

// Commit executes all staged actions in insertion order. If any action
// fails, previously completed actions are rolled back in reverse order and a
// *CommitError is returned. Rollback failures do not stop the remaining
// rollbacks; they are logged and collected on the CommitError.
//
// After Commit returns the RequestContext is marked as committed.
// Returns ErrAlreadyCommitted if called more than once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.Description()),
		)

		if err := item.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
			return &CommitError{
				Step:         i + 1,
				Total:        len(items),
				Action:       item.Description(),
				Err:          err,
				RollbackErrs: rollbackItems(ctx, items, i-1, logger),
			}
		}
	}

	return nil
}

// rollbackItems rolls back items 0..upTo (inclusive) in reverse order and
// returns the rollback failures. Rollbacks ignore cancellation of ctx: a
// request that timed out mid-commit must still restore what it wrote.
func rollbackItems(ctx context.Context, items []domain.Action, upTo int, logger *slog.Logger) []error {
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for i := upTo; i >= 0; i-- {
		item := items[i]

		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", item.Description()),
		)

		if err := item.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("rolling back %s: %w", item.Description(), err))
		}
	}
	return errs
}
