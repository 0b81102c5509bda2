package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Compile-time interface check.
var _ ports.EventPublisher = (*EventLog)(nil)

// EventLog appends lifecycle events to the audit table. Partial failure
// reasons are stored verbatim so reconciliation work can be queried.
type EventLog struct {
	db *sql.DB
}

// NewEventLog creates an EventLog on db. The events table is created by the
// Store migrations, so db must come from Store.DB.
func NewEventLog(db *sql.DB) *EventLog {
	return &EventLog{db: db}
}

// Publish implements ports.EventPublisher.
func (l *EventLog) Publish(ctx context.Context, evt domain.Event) error {
	var relKind, relFrom, relTo sql.NullString
	var relID sql.NullInt64
	if evt.Related != nil {
		relKind = sql.NullString{String: string(evt.Related.Kind), Valid: true}
		relID = sql.NullInt64{Int64: int64(evt.Related.ID), Valid: true} //nolint:gosec // ids fit in int64
		relFrom = sql.NullString{String: string(evt.RelatedFrom), Valid: true}
		relTo = sql.NullString{String: string(evt.RelatedTo), Valid: true}
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO events (id, type, operation, actor, subject_kind, subject_id,
			from_status, to_status, related_kind, related_id, related_from, related_to,
			reason, detail, correlation_id, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		evt.ID, string(evt.Type), evt.Operation, string(evt.Actor),
		string(evt.Subject.Kind), evt.Subject.ID,
		string(evt.From), string(evt.To),
		relKind, relID, relFrom, relTo,
		string(evt.Reason), evt.Detail, evt.CorrelationID, evt.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending %s event for %s %d: %w", evt.Type, evt.Subject.Kind, evt.Subject.ID, err)
	}
	return nil
}

// History returns the events that name ref as subject or related entity,
// oldest first.
func (l *EventLog) History(ctx context.Context, ref domain.Ref) ([]domain.Event, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, type, operation, actor, subject_kind, subject_id, from_status, to_status,
			related_kind, related_id, related_from, related_to, reason, detail, correlation_id, at
		FROM events
		WHERE (subject_kind = ? AND subject_id = ?) OR (related_kind = ? AND related_id = ?)
		ORDER BY at, rowid`,
		string(ref.Kind), ref.ID, string(ref.Kind), ref.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("reading history of %s %d: %w", ref.Kind, ref.ID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Event
	for rows.Next() {
		var (
			evt                     domain.Event
			typ, actor, subKind     string
			from, to, reason, at    string
			relKind, relFrom, relTo sql.NullString
			relID                   sql.NullInt64
		)
		if err := rows.Scan(&evt.ID, &typ, &evt.Operation, &actor, &subKind, &evt.Subject.ID,
			&from, &to, &relKind, &relID, &relFrom, &relTo, &reason, &evt.Detail, &evt.CorrelationID, &at); err != nil {
			return nil, err
		}
		evt.Type = domain.EventType(typ)
		evt.Actor = domain.Principal(actor)
		evt.Subject.Kind = domain.Kind(subKind)
		evt.From = domain.Status(from)
		evt.To = domain.Status(to)
		evt.Reason = domain.PartialFailureReason(reason)
		if relKind.Valid {
			evt.Related = &domain.Ref{Kind: domain.Kind(relKind.String), ID: uint64(relID.Int64)} //nolint:gosec // stored from uint64
			evt.RelatedFrom = domain.Status(relFrom.String)
			evt.RelatedTo = domain.Status(relTo.String)
		}
		if evt.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parsing event time %q: %w", at, err)
		}
		out = append(out, evt)
	}
	return out, rows.Err()
}
