package notify

import (
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// RefDTO names an entity on the wire.
type RefDTO struct {
	Kind string `json:"kind"`
	ID   uint64 `json:"id"`
}

// EventDTO is the notification service's representation of a lifecycle
// event.
type EventDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Operation   string    `json:"operation"`
	Actor       string    `json:"actor"`
	Subject     RefDTO    `json:"subject"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	Related     *RefDTO   `json:"related,omitempty"`
	RelatedFrom string    `json:"related_from,omitempty"`
	RelatedTo   string    `json:"related_to,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Correlation string    `json:"correlation_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ToEventDTO translates a domain event into the notification wire format.
func ToEventDTO(e domain.Event) EventDTO {
	dto := EventDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		Operation:   e.Operation,
		Actor:       string(e.Actor),
		Subject:     RefDTO{Kind: string(e.Subject.Kind), ID: e.Subject.ID},
		From:        string(e.From),
		To:          string(e.To),
		RelatedFrom: string(e.RelatedFrom),
		RelatedTo:   string(e.RelatedTo),
		Reason:      string(e.Reason),
		Detail:      e.Detail,
		Correlation: e.CorrelationID,
		OccurredAt:  e.At.UTC(),
	}
	if e.Related != nil {
		dto.Related = &RefDTO{Kind: string(e.Related.Kind), ID: e.Related.ID}
	}
	return dto
}
