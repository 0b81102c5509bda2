// Package policy provides the authorization gate for lifecycle transitions.
//
// Rules are keyed by entity kind and target status. A transition without a
// rule is denied. Creation and reads are not gated.
package policy

import (
	"fmt"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

// Rule decides whether caller may move subject to a status. parent is the
// related entity for child kinds (the project of a proposal, the bounty of a
// submission, the hackathon of an entry) and nil otherwise.
type Rule func(caller domain.Principal, subject, parent domain.Entity) error

type ruleKey struct {
	kind domain.Kind
	to   domain.Status
}

// Gate evaluates transition rules. The zero value denies everything; use
// NewGate for the marketplace rule set.
type Gate struct {
	rules map[ruleKey]Rule
}

// NewGate returns the gate with the marketplace rules installed.
func NewGate() *Gate {
	projectClient := subjectRole("project client", func(p *work.Project) domain.Principal { return p.Client })
	proposalParentClient := parentRole("project client", func(p *work.Project) domain.Principal { return p.Client })
	bountyOwner := subjectRole("bounty owner", func(b *bounty.Bounty) domain.Principal { return b.Owner })
	organizer := subjectRole("hackathon organizer", func(h *hackathon.Hackathon) domain.Principal { return h.Organizer })
	entryOrganizer := parentRole("hackathon organizer", func(h *hackathon.Hackathon) domain.Principal { return h.Organizer })
	paymentClient := subjectRole("payment client", func(p *escrow.Payment) domain.Principal { return p.Client })

	g := &Gate{rules: make(map[ruleKey]Rule)}

	g.add(domain.KindProject, work.ProjectInProgress, projectClient)
	g.add(domain.KindProject, work.ProjectCancelled, projectClient)
	g.add(domain.KindProject, work.ProjectCompleted, projectClient)
	g.add(domain.KindProject, work.ProjectUnderReview,
		subjectRole("assigned freelancer", func(p *work.Project) domain.Principal { return p.Freelancer }))

	g.add(domain.KindProposal, work.ProposalAccepted, proposalParentClient)
	g.add(domain.KindProposal, work.ProposalRejected, proposalParentClient)
	g.add(domain.KindProposal, work.ProposalWithdrawn,
		subjectRole("proposal submitter", func(p *work.Proposal) domain.Principal { return p.Freelancer }))

	g.add(domain.KindBounty, bounty.StatusClosed, bountyOwner)
	g.add(domain.KindBounty, bounty.StatusAwarded, bountyOwner)
	g.add(domain.KindBounty, bounty.StatusExpired, bountyOwner)

	submissionJudge := parentRole("bounty owner", func(b *bounty.Bounty) domain.Principal { return b.Owner })
	g.add(domain.KindSubmission, bounty.SubmissionAccepted, submissionJudge)
	g.add(domain.KindSubmission, bounty.SubmissionRejected, submissionJudge)

	for _, s := range []domain.Status{
		hackathon.StatusRegistrationClosed, hackathon.StatusOngoing,
		hackathon.StatusCompleted, hackathon.StatusCancelled,
	} {
		g.add(domain.KindHackathon, s, organizer)
	}

	g.add(domain.KindEntry, hackathon.EntrySubmitted,
		subjectRole("team lead", func(e *hackathon.Entry) domain.Principal { return e.TeamLead }))
	for _, s := range []domain.Status{
		hackathon.EntryUnderReview, hackathon.EntryFinalist,
		hackathon.EntryWinner, hackathon.EntryCompleted,
	} {
		g.add(domain.KindEntry, s, entryOrganizer)
	}

	g.add(domain.KindPayment, escrow.StatusEscrowed, paymentClient)
	g.add(domain.KindPayment, escrow.StatusReleased, paymentClient)
	g.add(domain.KindPayment, escrow.StatusRefunded, paymentClient)
	g.add(domain.KindPayment, escrow.StatusDisputed, paymentParty)

	return g
}

func (g *Gate) add(kind domain.Kind, to domain.Status, r Rule) {
	g.rules[ruleKey{kind: kind, to: to}] = r
}

// Authorize returns nil when caller may move subject to status to, or an
// error wrapping domain.ErrUnauthorized with the reason.
func (g *Gate) Authorize(caller domain.Principal, subject domain.Entity, to domain.Status, parent domain.Entity) error {
	if caller == "" {
		return fmt.Errorf("%w: no caller identity", domain.ErrUnauthorized)
	}
	r, ok := g.rules[ruleKey{kind: subject.Kind(), to: to}]
	if !ok {
		return fmt.Errorf("%w: no rule permits %s -> %s", domain.ErrUnauthorized, subject.Kind(), to)
	}
	return r(caller, subject, parent)
}

func subjectRole[E domain.Entity](role string, principal func(E) domain.Principal) Rule {
	return func(caller domain.Principal, subject, _ domain.Entity) error {
		e, ok := subject.(E)
		if !ok {
			return fmt.Errorf("%w: %s is not a %s subject", domain.ErrUnauthorized, subject.Kind(), role)
		}
		return require(caller, principal(e), role)
	}
}

func parentRole[E domain.Entity](role string, principal func(E) domain.Principal) Rule {
	return func(caller domain.Principal, subject, parent domain.Entity) error {
		if parent == nil {
			return fmt.Errorf("%w: %s requires its parent to authorize", domain.ErrUnauthorized, subject.Kind())
		}
		p, ok := parent.(E)
		if !ok {
			return fmt.Errorf("%w: %s is not the parent of %s", domain.ErrUnauthorized, parent.Kind(), subject.Kind())
		}
		return require(caller, principal(p), role)
	}
}

func paymentParty(caller domain.Principal, subject, _ domain.Entity) error {
	p, ok := subject.(*escrow.Payment)
	if !ok || !p.Party(caller) {
		return fmt.Errorf("%w: only the client or freelancer may dispute a payment", domain.ErrUnauthorized)
	}
	return nil
}

func require(caller, want domain.Principal, role string) error {
	if want == "" || caller != want {
		return fmt.Errorf("%w: only the %s may do this", domain.ErrUnauthorized, role)
	}
	return nil
}
