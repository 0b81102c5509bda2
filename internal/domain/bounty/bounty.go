// Package bounty models open bounties and the solutions submitted to them.
package bounty

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Bounty statuses.
const (
	StatusOpen    domain.Status = "open"
	StatusClosed  domain.Status = "closed"
	StatusAwarded domain.Status = "awarded"
	StatusExpired domain.Status = "expired"
)

// Graph is the transition graph for bounties. Awarded is reached only by
// accepting a submission.
var Graph = domain.NewGraph(domain.KindBounty, StatusOpen,
	[]domain.Status{StatusOpen, StatusClosed, StatusAwarded, StatusExpired},
	domain.Step(StatusOpen, StatusClosed),
	domain.Paired(StatusOpen, StatusAwarded),
	domain.Step(StatusOpen, StatusExpired),
	domain.Paired(StatusClosed, StatusAwarded),
	domain.Step(StatusClosed, StatusExpired),
)

// SweepStatuses are the statuses the expiry sweep inspects.
var SweepStatuses = []domain.Status{StatusOpen, StatusClosed}

// Bounty is a reward offered for a solution delivered before Deadline.
type Bounty struct {
	domain.Header
	Owner       domain.Principal
	Title       string
	Description string
	Category    string
	Reward      uint64
	Deadline    time.Time
}

// Kind implements domain.Entity.
func (b *Bounty) Kind() domain.Kind { return domain.KindBounty }

// Graph implements domain.Entity.
func (b *Bounty) Graph() *domain.Graph { return Graph }

// Indexes implements domain.Entity.
func (b *Bounty) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:    string(b.Owner),
		domain.IndexCategory: b.Category,
		domain.IndexStatus:   string(b.Status),
	}
}

// Clone implements domain.Entity.
func (b *Bounty) Clone() domain.Entity {
	c := *b
	return &c
}

// Accepting reports whether a submission may currently be accepted.
func (b *Bounty) Accepting() bool {
	return b.Status == StatusOpen || b.Status == StatusClosed
}

// IsExpired reports whether the deadline has passed at now.
func (b *Bounty) IsExpired(now time.Time) bool {
	return b.Deadline.Before(now)
}

// ExpiryTarget returns the status a sweep at now moves the bounty to.
func (b *Bounty) ExpiryTarget(now time.Time) (domain.Status, bool) {
	if !b.Accepting() || !b.IsExpired(now) {
		return "", false
	}
	return StatusExpired, true
}

// Validate checks business rules for a new Bounty.
func (b *Bounty) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(string(b.Owner)) == "" {
		fields["owner"] = domain.MsgRequired
	}
	if strings.TrimSpace(b.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(b.Category) == "" {
		fields["category"] = domain.MsgRequired
	}
	if b.Reward == 0 {
		fields["reward"] = "must be positive"
	}
	if b.Deadline.IsZero() {
		fields["deadline"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
