package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

// LifecycleService exposes kind-agnostic reads and the single-entity
// transition. Transitions that belong to a paired operation or to the
// escrow protocol are refused here with domain.ErrInvalidTransition.
type LifecycleService interface {
	// Get returns the entity of kind with id.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, kind domain.Kind, id uint64) (domain.Entity, error)

	// List returns entities of kind matching filter.
	List(ctx context.Context, kind domain.Kind, filter domain.Filter) ([]domain.Entity, error)

	// Transition moves one entity to status to on behalf of caller.
	// Returns domain.ErrUnauthorized, domain.ErrInvalidTransition,
	// domain.ErrNotFound or domain.ErrStale.
	Transition(ctx context.Context, caller domain.Principal, kind domain.Kind, id uint64, to domain.Status) (domain.Entity, error)
}

// WorkService manages projects and proposals.
type WorkService interface {
	// CreateProject stores a new Open project owned by p.Client.
	// Returns domain.ErrValidation if the project fails validation.
	CreateProject(ctx context.Context, p *work.Project) (*work.Project, error)

	// GetProject returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id uint64) (*work.Project, error)

	ListProjects(ctx context.Context, filter domain.Filter) ([]*work.Project, error)

	// SubmitProposal stores a new Pending proposal.
	// Returns domain.ErrInvalidStatus if the project is not accepting
	// proposals and domain.ErrAlreadyExists if the freelancer already has a
	// pending proposal on it.
	SubmitProposal(ctx context.Context, p *work.Proposal) (*work.Proposal, error)

	GetProposal(ctx context.Context, id uint64) (*work.Proposal, error)

	ListProposals(ctx context.Context, filter domain.Filter) ([]*work.Proposal, error)

	// WithdrawProposal is allowed only to the proposal's freelancer.
	WithdrawProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, error)

	// RejectProposal is allowed only to the project client.
	RejectProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, error)

	// AcceptProposal moves the proposal to Accepted and its project to
	// InProgress as one unit. Returns domain.ErrPartialFailure (as
	// *domain.PartialFailureError) if the project step failed after the
	// proposal step was applied.
	AcceptProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, *work.Project, error)

	// RejectPendingProposals rejects every pending sibling once the project
	// has left its open status. It returns the rejected proposals.
	RejectPendingProposals(ctx context.Context, caller domain.Principal, projectID uint64) ([]*work.Proposal, error)
}

// BountyService manages bounties and their submissions.
type BountyService interface {
	CreateBounty(ctx context.Context, b *bounty.Bounty) (*bounty.Bounty, error)
	GetBounty(ctx context.Context, id uint64) (*bounty.Bounty, error)
	ListBounties(ctx context.Context, filter domain.Filter) ([]*bounty.Bounty, error)

	// CloseBounty stops new submissions. Only the owner may close.
	CloseBounty(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Bounty, error)

	// SubmitSolution stores a new Pending submission.
	// Returns domain.ErrInvalidStatus if the bounty is closed or expired.
	SubmitSolution(ctx context.Context, s *bounty.Submission) (*bounty.Submission, error)

	GetSubmission(ctx context.Context, id uint64) (*bounty.Submission, error)
	ListSubmissions(ctx context.Context, filter domain.Filter) ([]*bounty.Submission, error)
	RejectSubmission(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Submission, error)

	// AcceptSubmission moves the submission to Accepted and the bounty to
	// Awarded as one unit.
	AcceptSubmission(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Submission, *bounty.Bounty, error)

	RejectPendingSubmissions(ctx context.Context, caller domain.Principal, bountyID uint64) ([]*bounty.Submission, error)
}

// HackathonService manages hackathons and team entries.
type HackathonService interface {
	CreateHackathon(ctx context.Context, h *hackathon.Hackathon) (*hackathon.Hackathon, error)
	GetHackathon(ctx context.Context, id uint64) (*hackathon.Hackathon, error)
	ListHackathons(ctx context.Context, filter domain.Filter) ([]*hackathon.Hackathon, error)

	// CreateEntry registers a Draft entry.
	// Returns domain.ErrInvalidStatus once registration has closed and
	// domain.ErrAlreadyExists if the team lead already has an entry.
	CreateEntry(ctx context.Context, e *hackathon.Entry) (*hackathon.Entry, error)

	GetEntry(ctx context.Context, id uint64) (*hackathon.Entry, error)
	ListEntries(ctx context.Context, filter domain.Filter) ([]*hackathon.Entry, error)

	// DeclareWinner moves a finalist entry to Winner and its hackathon to
	// Completed as one unit.
	DeclareWinner(ctx context.Context, caller domain.Principal, entryID uint64) (*hackathon.Entry, *hackathon.Hackathon, error)

	// UpcomingHackathons returns hackathons that have not started yet,
	// soonest first.
	UpcomingHackathons(ctx context.Context) ([]*hackathon.Hackathon, error)

	// WinningEntries returns the hackathon's Winner entries.
	// Returns domain.ErrNotFound if the hackathon does not exist.
	WinningEntries(ctx context.Context, hackathonID uint64) ([]*hackathon.Entry, error)

	// IsRegistered reports whether user leads or belongs to an entry of the
	// hackathon. Returns domain.ErrNotFound if the hackathon does not exist.
	IsRegistered(ctx context.Context, hackathonID uint64, user domain.Principal) (bool, error)
}

// EscrowService implements the escrow protocol. Wrong-caller failures are
// reported as domain.ErrUnauthorized and wrong-state failures as
// domain.ErrInvalidStatus.
type EscrowService interface {
	// CreateEscrow stores a Pending payment.
	// Returns domain.ErrAlreadyExists if the project already has an active
	// payment.
	CreateEscrow(ctx context.Context, p *escrow.Payment) (*escrow.Payment, error)

	Deposit(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error)
	Release(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error)
	Refund(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error)
	Dispute(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error)

	GetPayment(ctx context.Context, id uint64) (*escrow.Payment, error)
	ListPayments(ctx context.Context, filter domain.Filter) ([]*escrow.Payment, error)
}

// SweepService applies deadline expiry to every entity of a kind.
type SweepService interface {
	// Sweep transitions every entity of kind whose deadline passed before
	// now and returns how many it moved. Repeating a sweep is a no-op for
	// entities already moved.
	Sweep(ctx context.Context, kind domain.Kind, now time.Time) (int, error)
}
