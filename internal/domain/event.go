package domain

import "time"

// EventType classifies facts emitted by the lifecycle core.
type EventType string

const (
	EventCreated        EventType = "created"
	EventTransitioned   EventType = "transitioned"
	EventPairApplied    EventType = "pair_applied"
	EventPartialFailure EventType = "pair_partial_failure"
)

// Event is a fact emitted after a lifecycle change. Collaborators such as
// notification delivery and the audit log consume events; the core never
// waits on their outcome.
type Event struct {
	ID        string
	Type      EventType
	Operation string
	Actor     Principal
	Subject   Ref
	From      Status
	To        Status
	// Related is set for paired transitions and names the parent entity.
	Related     *Ref
	RelatedFrom Status
	RelatedTo   Status
	// Reason carries the partial failure sub-reason, if any.
	Reason PartialFailureReason
	Detail string
	// CorrelationID ties the event to the request or sweep that caused it.
	CorrelationID string
	At            time.Time
}
