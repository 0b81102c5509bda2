package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrAlreadyExists     = errors.New("already exists")
	ErrStale             = errors.New("stale")
	ErrPartialFailure    = errors.New("partial failure")
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("unavailable")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// PartialFailureReason tells callers whether a failed paired transition
// left the store consistent.
type PartialFailureReason string

const (
	// ReasonRolledBack means the first transition was reverted; the
	// operation is safe to retry.
	ReasonRolledBack PartialFailureReason = "rolled_back"
	// ReasonNeedsReconciliation means the revert itself failed and the
	// two entities disagree until someone repairs them.
	ReasonNeedsReconciliation PartialFailureReason = "needs_reconciliation"
)

// PartialFailureError reports that the second step of a paired transition
// failed after the first step was applied.
//
// It matches both ErrPartialFailure and the original cause under errors.Is,
// so a rolled-back Stale failure is still recognisable as retryable.
type PartialFailureError struct {
	Operation   string
	Reason      PartialFailureReason
	Applied     Ref
	Failed      Ref
	Cause       error
	RollbackErr error
}

func (e *PartialFailureError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s %d applied, %s %d failed: %v",
		ErrPartialFailure, e.Operation, e.Applied.Kind, e.Applied.ID, e.Failed.Kind, e.Failed.ID, e.Cause)
	if e.RollbackErr != nil {
		msg += fmt.Sprintf(" (rollback failed: %v)", e.RollbackErr)
	}
	return msg + " [" + string(e.Reason) + "]"
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{ErrPartialFailure, e.Cause}
}

// Recovered reports whether the compensating rollback succeeded.
func (e *PartialFailureError) Recovered() bool {
	return e.Reason == ReasonRolledBack
}
