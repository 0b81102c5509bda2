package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.WorkService = (*WorkService)(nil)

// WorkService implements ports.WorkService for projects and proposals.
type WorkService struct {
	core   Core
	logger *slog.Logger
}

// NewWorkService creates a WorkService. A nil logger discards output.
func NewWorkService(core Core, logger *slog.Logger) *WorkService {
	return &WorkService{core: core, logger: orDiscard(logger)}
}

// CreateProject validates p and stores it as a new Open project.
func (s *WorkService) CreateProject(ctx context.Context, p *work.Project) (*work.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("client", string(p.Client)))

	if err := p.Validate(); err != nil {
		return nil, err
	}
	draft := p.Clone().(*work.Project)
	draft.Freelancer = ""

	created, err := s.core.Machine.Create(ctx, p.Client, draft)
	if err != nil {
		logFailure(ctx, s.logger, "CreateProject", domain.KindProject, 0, err)
		return nil, err
	}
	return lifecycle.As[*work.Project](created)
}

// GetProject returns the project with id.
func (s *WorkService) GetProject(ctx context.Context, id uint64) (*work.Project, error) {
	return lifecycle.Load[*work.Project](ctx, s.core.store(), domain.KindProject, id)
}

// ListProjects returns projects selected by filter.
func (s *WorkService) ListProjects(ctx context.Context, filter domain.Filter) ([]*work.Project, error) {
	return list[*work.Project](ctx, s.core.store(), work.ProjectGraph, filter)
}

// SubmitProposal stores a new Pending proposal on an accepting project.
func (s *WorkService) SubmitProposal(ctx context.Context, p *work.Proposal) (*work.Proposal, error) {
	s.logger.InfoContext(ctx, "submitting proposal",
		slog.Uint64("project_id", p.ProjectID),
		slog.String("freelancer", string(p.Freelancer)),
	)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	project, err := s.GetProject(ctx, p.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.Accepting() {
		return nil, fmt.Errorf("%w: project %d is %s", domain.ErrInvalidStatus, project.ID, project.Status)
	}
	if project.Client == p.Freelancer {
		return nil, &domain.ValidationError{Fields: map[string]string{"freelancer": "must differ from the project client"}}
	}

	pending, err := s.pendingProposals(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	for _, existing := range pending {
		if existing.Freelancer == p.Freelancer {
			return nil, fmt.Errorf("%w: %s already has pending proposal %d on project %d",
				domain.ErrAlreadyExists, p.Freelancer, existing.ID, project.ID)
		}
	}

	created, err := s.core.Machine.Create(ctx, p.Freelancer, p)
	if err != nil {
		logFailure(ctx, s.logger, "SubmitProposal", domain.KindProposal, 0, err)
		return nil, err
	}
	return lifecycle.As[*work.Proposal](created)
}

// GetProposal returns the proposal with id.
func (s *WorkService) GetProposal(ctx context.Context, id uint64) (*work.Proposal, error) {
	return lifecycle.Load[*work.Proposal](ctx, s.core.store(), domain.KindProposal, id)
}

// ListProposals returns proposals selected by filter.
func (s *WorkService) ListProposals(ctx context.Context, filter domain.Filter) ([]*work.Proposal, error) {
	return list[*work.Proposal](ctx, s.core.store(), work.ProposalGraph, filter)
}

// WithdrawProposal moves a pending proposal to Withdrawn.
func (s *WorkService) WithdrawProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, error) {
	return s.moveProposal(ctx, "WithdrawProposal", caller, id, work.ProposalWithdrawn)
}

// RejectProposal moves a pending proposal to Rejected.
func (s *WorkService) RejectProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, error) {
	return s.moveProposal(ctx, "RejectProposal", caller, id, work.ProposalRejected)
}

func (s *WorkService) moveProposal(ctx context.Context, op string, caller domain.Principal, id uint64, to domain.Status) (*work.Proposal, error) {
	s.logger.InfoContext(ctx, "moving proposal", slog.Uint64("id", id), slog.String("to", string(to)))

	proposal, err := s.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	project, err := s.GetProject(ctx, proposal.ProjectID)
	if err != nil {
		return nil, err
	}

	next, err := s.core.transition(ctx, op, caller, proposal, to, project)
	if err != nil {
		logFailure(ctx, s.logger, op, domain.KindProposal, id, err)
		return nil, err
	}
	return lifecycle.As[*work.Proposal](next)
}

// AcceptProposal accepts the proposal and starts its project as one unit,
// assigning the proposal's freelancer to the project.
func (s *WorkService) AcceptProposal(ctx context.Context, caller domain.Principal, id uint64) (*work.Proposal, *work.Project, error) {
	s.logger.InfoContext(ctx, "accepting proposal", slog.Uint64("id", id))

	proposal, err := s.GetProposal(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.GetProject(ctx, proposal.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if !project.Accepting() {
		return nil, nil, fmt.Errorf("%w: project %d is %s with freelancer %q",
			domain.ErrInvalidTransition, project.ID, project.Status, project.Freelancer)
	}

	child, parent, err := s.core.Coordinator.Apply(ctx, lifecycle.Pair{
		Operation: "accept_proposal",
		Caller:    caller,
		Child:     proposal,
		ChildTo:   work.ProposalAccepted,
		Parent:    project,
		ParentTo:  work.ProjectInProgress,
		ParentMutate: func(e domain.Entity) {
			if p, ok := e.(*work.Project); ok && p.Freelancer == "" {
				p.Freelancer = proposal.Freelancer
			}
		},
	})
	if err != nil {
		logFailure(ctx, s.logger, "AcceptProposal", domain.KindProposal, id, err)
		return nil, nil, err
	}

	accepted, err := lifecycle.As[*work.Proposal](child)
	if err != nil {
		return nil, nil, err
	}
	started, err := lifecycle.As[*work.Project](parent)
	if err != nil {
		return nil, nil, err
	}
	return accepted, started, nil
}

// RejectPendingProposals rejects every pending proposal on a project that is
// no longer accepting. Proposals that fail to move are reported together;
// the ones that did move are still returned.
func (s *WorkService) RejectPendingProposals(ctx context.Context, caller domain.Principal, projectID uint64) ([]*work.Proposal, error) {
	s.logger.InfoContext(ctx, "rejecting pending proposals", slog.Uint64("project_id", projectID))

	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.core.Gate.Authorize(caller, &work.Proposal{ProjectID: projectID}, work.ProposalRejected, project); err != nil {
		return nil, err
	}
	if project.Accepting() {
		return nil, fmt.Errorf("%w: project %d is still %s", domain.ErrInvalidStatus, project.ID, project.Status)
	}

	pending, err := s.pendingProposals(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rejected := make([]*work.Proposal, 0, len(pending))
	var errs []error
	for _, p := range pending {
		next, err := s.core.transition(ctx, "reject_pending_proposals", caller, p, work.ProposalRejected, project)
		if err != nil {
			errs = append(errs, fmt.Errorf("proposal %d: %w", p.ID, err))
			continue
		}
		rejected = append(rejected, next.(*work.Proposal))
	}
	if err := errors.Join(errs...); err != nil {
		logFailure(ctx, s.logger, "RejectPendingProposals", domain.KindProject, projectID, err)
		return rejected, err
	}
	return rejected, nil
}

func (s *WorkService) pendingProposals(ctx context.Context, projectID uint64) ([]*work.Proposal, error) {
	all, err := s.ListProposals(ctx, domain.Filter{
		Index: domain.IndexParent,
		Key:   strconv.FormatUint(projectID, 10),
	})
	if err != nil {
		return nil, err
	}
	pending := all[:0]
	for _, p := range all {
		if p.Status == work.ProposalPending {
			pending = append(pending, p)
		}
	}
	return pending, nil
}
