// Package hackathon models hackathons and the team projects entered in them.
package hackathon

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Hackathon statuses.
const (
	StatusRegistrationOpen   domain.Status = "registration_open"
	StatusRegistrationClosed domain.Status = "registration_closed"
	StatusOngoing            domain.Status = "ongoing"
	StatusCompleted          domain.Status = "completed"
	StatusCancelled          domain.Status = "cancelled"
)

// Graph is the transition graph for hackathons. Completed is reachable from
// every running status so that a passed end date can always be recorded.
var Graph = domain.NewGraph(domain.KindHackathon, StatusRegistrationOpen,
	[]domain.Status{StatusRegistrationOpen, StatusRegistrationClosed, StatusOngoing, StatusCompleted, StatusCancelled},
	domain.Step(StatusRegistrationOpen, StatusRegistrationClosed),
	domain.Step(StatusRegistrationOpen, StatusCompleted),
	domain.Step(StatusRegistrationOpen, StatusCancelled),
	domain.Step(StatusRegistrationClosed, StatusOngoing),
	domain.Step(StatusRegistrationClosed, StatusCompleted),
	domain.Step(StatusRegistrationClosed, StatusCancelled),
	domain.Step(StatusOngoing, StatusCompleted),
	domain.Step(StatusOngoing, StatusCancelled),
)

// SweepStatuses are the statuses the expiry sweep inspects.
var SweepStatuses = []domain.Status{StatusRegistrationOpen, StatusRegistrationClosed, StatusOngoing}

// Hackathon is a time-boxed competition with a registration window.
type Hackathon struct {
	domain.Header
	Organizer            domain.Principal
	Title                string
	Description          string
	Category             string
	Prize                uint64
	RegistrationDeadline time.Time
	StartDate            time.Time
	EndDate              time.Time
}

// Kind implements domain.Entity.
func (h *Hackathon) Kind() domain.Kind { return domain.KindHackathon }

// Graph implements domain.Entity.
func (h *Hackathon) Graph() *domain.Graph { return Graph }

// Indexes implements domain.Entity.
func (h *Hackathon) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:    string(h.Organizer),
		domain.IndexCategory: h.Category,
		domain.IndexStatus:   string(h.Status),
	}
}

// Clone implements domain.Entity.
func (h *Hackathon) Clone() domain.Entity {
	c := *h
	return &c
}

// RegistrationOpen reports whether teams may still register at now.
func (h *Hackathon) RegistrationOpen(now time.Time) bool {
	return h.Status == StatusRegistrationOpen && !h.RegistrationDeadline.Before(now)
}

// Start returns the start date, or the registration deadline when no start
// date was set.
func (h *Hackathon) Start() time.Time {
	if h.StartDate.IsZero() {
		return h.RegistrationDeadline
	}
	return h.StartDate
}

// Upcoming reports whether the hackathon is still in its registration phase
// and has not started at now.
func (h *Hackathon) Upcoming(now time.Time) bool {
	if h.Status != StatusRegistrationOpen && h.Status != StatusRegistrationClosed {
		return false
	}
	return h.Start().After(now)
}

// ExpiryTarget returns the status a sweep at now moves the hackathon to.
// The end date is checked before the registration deadline.
func (h *Hackathon) ExpiryTarget(now time.Time) (domain.Status, bool) {
	if Graph.IsTerminal(h.Status) {
		return "", false
	}
	if h.EndDate.Before(now) {
		return StatusCompleted, true
	}
	if h.Status == StatusRegistrationOpen && h.RegistrationDeadline.Before(now) {
		return StatusRegistrationClosed, true
	}
	return "", false
}

// Validate checks business rules for a new Hackathon.
func (h *Hackathon) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(string(h.Organizer)) == "" {
		fields["organizer"] = domain.MsgRequired
	}
	if strings.TrimSpace(h.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if h.RegistrationDeadline.IsZero() {
		fields["registration_deadline"] = domain.MsgRequired
	}
	if h.EndDate.IsZero() {
		fields["end_date"] = domain.MsgRequired
	}
	if !h.StartDate.IsZero() && !h.EndDate.IsZero() && !h.StartDate.Before(h.EndDate) {
		fields["start_date"] = "must be before end_date"
	}
	if !h.RegistrationDeadline.IsZero() && h.RegistrationDeadline.After(h.EndDate) {
		fields["registration_deadline"] = "must not be after end_date"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
