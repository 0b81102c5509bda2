package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.BountyService = (*BountyService)(nil)

// BountyService implements ports.BountyService for bounties and their
// submissions.
type BountyService struct {
	core   Core
	logger *slog.Logger
}

// NewBountyService creates a BountyService. A nil logger discards output.
func NewBountyService(core Core, logger *slog.Logger) *BountyService {
	return &BountyService{core: core, logger: orDiscard(logger)}
}

// CreateBounty validates b and stores it as a new Open bounty.
func (s *BountyService) CreateBounty(ctx context.Context, b *bounty.Bounty) (*bounty.Bounty, error) {
	s.logger.InfoContext(ctx, "creating bounty", slog.String("owner", string(b.Owner)))

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !b.Deadline.After(s.core.Machine.Clock().Now()) {
		return nil, &domain.ValidationError{Fields: map[string]string{"deadline": "must be in the future"}}
	}

	created, err := s.core.Machine.Create(ctx, b.Owner, b)
	if err != nil {
		logFailure(ctx, s.logger, "CreateBounty", domain.KindBounty, 0, err)
		return nil, err
	}
	return lifecycle.As[*bounty.Bounty](created)
}

// GetBounty returns the bounty with id.
func (s *BountyService) GetBounty(ctx context.Context, id uint64) (*bounty.Bounty, error) {
	return lifecycle.Load[*bounty.Bounty](ctx, s.core.store(), domain.KindBounty, id)
}

// ListBounties returns bounties selected by filter.
func (s *BountyService) ListBounties(ctx context.Context, filter domain.Filter) ([]*bounty.Bounty, error) {
	return list[*bounty.Bounty](ctx, s.core.store(), bounty.Graph, filter)
}

// CloseBounty moves an open bounty to Closed.
func (s *BountyService) CloseBounty(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Bounty, error) {
	s.logger.InfoContext(ctx, "closing bounty", slog.Uint64("id", id))

	b, err := s.GetBounty(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := s.core.transition(ctx, "close_bounty", caller, b, bounty.StatusClosed, nil)
	if err != nil {
		logFailure(ctx, s.logger, "CloseBounty", domain.KindBounty, id, err)
		return nil, err
	}
	return lifecycle.As[*bounty.Bounty](next)
}

// SubmitSolution stores a new Pending submission on an open bounty whose
// deadline has not passed.
func (s *BountyService) SubmitSolution(ctx context.Context, sub *bounty.Submission) (*bounty.Submission, error) {
	s.logger.InfoContext(ctx, "submitting solution",
		slog.Uint64("bounty_id", sub.BountyID),
		slog.String("submitter", string(sub.Submitter)),
	)

	if err := sub.Validate(); err != nil {
		return nil, err
	}
	b, err := s.GetBounty(ctx, sub.BountyID)
	if err != nil {
		return nil, err
	}
	if b.Status != bounty.StatusOpen {
		return nil, fmt.Errorf("%w: bounty %d is %s", domain.ErrInvalidStatus, b.ID, b.Status)
	}
	if b.IsExpired(s.core.Machine.Clock().Now()) {
		return nil, fmt.Errorf("%w: bounty %d deadline has passed", domain.ErrInvalidStatus, b.ID)
	}
	if b.Owner == sub.Submitter {
		return nil, &domain.ValidationError{Fields: map[string]string{"submitter": "must differ from the bounty owner"}}
	}

	created, err := s.core.Machine.Create(ctx, sub.Submitter, sub)
	if err != nil {
		logFailure(ctx, s.logger, "SubmitSolution", domain.KindSubmission, 0, err)
		return nil, err
	}
	return lifecycle.As[*bounty.Submission](created)
}

// GetSubmission returns the submission with id.
func (s *BountyService) GetSubmission(ctx context.Context, id uint64) (*bounty.Submission, error) {
	return lifecycle.Load[*bounty.Submission](ctx, s.core.store(), domain.KindSubmission, id)
}

// ListSubmissions returns submissions selected by filter.
func (s *BountyService) ListSubmissions(ctx context.Context, filter domain.Filter) ([]*bounty.Submission, error) {
	return list[*bounty.Submission](ctx, s.core.store(), bounty.SubmissionGraph, filter)
}

// RejectSubmission moves a pending submission to Rejected.
func (s *BountyService) RejectSubmission(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Submission, error) {
	s.logger.InfoContext(ctx, "rejecting submission", slog.Uint64("id", id))

	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := s.GetBounty(ctx, sub.BountyID)
	if err != nil {
		return nil, err
	}
	next, err := s.core.transition(ctx, "reject_submission", caller, sub, bounty.SubmissionRejected, b)
	if err != nil {
		logFailure(ctx, s.logger, "RejectSubmission", domain.KindSubmission, id, err)
		return nil, err
	}
	return lifecycle.As[*bounty.Submission](next)
}

// AcceptSubmission accepts the submission and awards its bounty as one unit.
func (s *BountyService) AcceptSubmission(ctx context.Context, caller domain.Principal, id uint64) (*bounty.Submission, *bounty.Bounty, error) {
	s.logger.InfoContext(ctx, "accepting submission", slog.Uint64("id", id))

	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.GetBounty(ctx, sub.BountyID)
	if err != nil {
		return nil, nil, err
	}

	child, parent, err := s.core.Coordinator.Apply(ctx, lifecycle.Pair{
		Operation: "accept_submission",
		Caller:    caller,
		Child:     sub,
		ChildTo:   bounty.SubmissionAccepted,
		Parent:    b,
		ParentTo:  bounty.StatusAwarded,
	})
	if err != nil {
		logFailure(ctx, s.logger, "AcceptSubmission", domain.KindSubmission, id, err)
		return nil, nil, err
	}

	accepted, err := lifecycle.As[*bounty.Submission](child)
	if err != nil {
		return nil, nil, err
	}
	awarded, err := lifecycle.As[*bounty.Bounty](parent)
	if err != nil {
		return nil, nil, err
	}
	return accepted, awarded, nil
}

// RejectPendingSubmissions rejects every pending submission on a bounty that
// has been awarded or has expired.
func (s *BountyService) RejectPendingSubmissions(ctx context.Context, caller domain.Principal, bountyID uint64) ([]*bounty.Submission, error) {
	s.logger.InfoContext(ctx, "rejecting pending submissions", slog.Uint64("bounty_id", bountyID))

	b, err := s.GetBounty(ctx, bountyID)
	if err != nil {
		return nil, err
	}
	if err := s.core.Gate.Authorize(caller, &bounty.Submission{BountyID: bountyID}, bounty.SubmissionRejected, b); err != nil {
		return nil, err
	}
	if b.Accepting() {
		return nil, fmt.Errorf("%w: bounty %d is still %s", domain.ErrInvalidStatus, b.ID, b.Status)
	}

	all, err := s.ListSubmissions(ctx, domain.Filter{
		Index: domain.IndexParent,
		Key:   strconv.FormatUint(bountyID, 10),
	})
	if err != nil {
		return nil, err
	}

	rejected := make([]*bounty.Submission, 0, len(all))
	var errs []error
	for _, sub := range all {
		if sub.Status != bounty.SubmissionPending {
			continue
		}
		next, err := s.core.transition(ctx, "reject_pending_submissions", caller, sub, bounty.SubmissionRejected, b)
		if err != nil {
			errs = append(errs, fmt.Errorf("submission %d: %w", sub.ID, err))
			continue
		}
		rejected = append(rejected, next.(*bounty.Submission))
	}
	if err := errors.Join(errs...); err != nil {
		logFailure(ctx, s.logger, "RejectPendingSubmissions", domain.KindBounty, bountyID, err)
		return rejected, err
	}
	return rejected, nil
}
