// Package kinds is the registry of entity kinds: their transition graphs,
// zero-value constructors, and expiry rules. The registry is built once at
// package initialization and never mutated.
package kinds

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

// Expiry describes how the sweeper expires one kind.
type Expiry struct {
	// Statuses are the candidate statuses the sweeper lists.
	Statuses []domain.Status
	// Target returns the status e should move to at now, if any.
	Target func(e domain.Entity, now time.Time) (domain.Status, bool)
}

type entry struct {
	graph  *domain.Graph
	newFn  func() domain.Entity
	expiry *Expiry
}

var registry = map[domain.Kind]entry{
	domain.KindProject:    {graph: work.ProjectGraph, newFn: func() domain.Entity { return &work.Project{} }},
	domain.KindProposal:   {graph: work.ProposalGraph, newFn: func() domain.Entity { return &work.Proposal{} }},
	domain.KindSubmission: {graph: bounty.SubmissionGraph, newFn: func() domain.Entity { return &bounty.Submission{} }},
	domain.KindEntry:      {graph: hackathon.EntryGraph, newFn: func() domain.Entity { return &hackathon.Entry{} }},
	domain.KindPayment:    {graph: escrow.Graph, newFn: func() domain.Entity { return &escrow.Payment{} }},
	domain.KindBounty: {
		graph: bounty.Graph,
		newFn: func() domain.Entity { return &bounty.Bounty{} },
		expiry: &Expiry{
			Statuses: bounty.SweepStatuses,
			Target: func(e domain.Entity, now time.Time) (domain.Status, bool) {
				b, ok := e.(*bounty.Bounty)
				if !ok {
					return "", false
				}
				return b.ExpiryTarget(now)
			},
		},
	},
	domain.KindHackathon: {
		graph: hackathon.Graph,
		newFn: func() domain.Entity { return &hackathon.Hackathon{} },
		expiry: &Expiry{
			Statuses: hackathon.SweepStatuses,
			Target: func(e domain.Entity, now time.Time) (domain.Status, bool) {
				h, ok := e.(*hackathon.Hackathon)
				if !ok {
					return "", false
				}
				return h.ExpiryTarget(now)
			},
		},
	},
}

// All returns every registered kind in a stable order.
func All() []domain.Kind {
	return []domain.Kind{
		domain.KindProject, domain.KindProposal,
		domain.KindBounty, domain.KindSubmission,
		domain.KindHackathon, domain.KindEntry,
		domain.KindPayment,
	}
}

// Graph returns the transition graph for kind.
func Graph(kind domain.Kind) (*domain.Graph, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, unknown(kind)
	}
	return e.graph, nil
}

// New returns a zero-value entity of kind, ready for decoding.
func New(kind domain.Kind) (domain.Entity, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, unknown(kind)
	}
	return e.newFn(), nil
}

// ExpiryFor returns the expiry rule for kind. The second result is false for
// kinds that have no deadline.
func ExpiryFor(kind domain.Kind) (Expiry, bool) {
	e, ok := registry[kind]
	if !ok || e.expiry == nil {
		return Expiry{}, false
	}
	return *e.expiry, true
}

// Sweepable returns the kinds that carry deadlines.
func Sweepable() []domain.Kind {
	return []domain.Kind{domain.KindBounty, domain.KindHackathon}
}

func unknown(kind domain.Kind) error {
	return &domain.ValidationError{Fields: map[string]string{"kind": fmt.Sprintf("unknown kind %q", kind)}}
}
