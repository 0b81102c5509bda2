package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

func TestWorkService_AcceptProposal(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	if project.Status != work.ProjectOpen || project.Budget != 1000 {
		t.Fatalf("CreateProject() = %+v, want open project with budget 1000", project)
	}
	first := h.proposal(t, project.ID, bob, 950)
	second := h.proposal(t, project.ID, carol, 900)

	accepted, started, err := h.work.AcceptProposal(ctx, alice, first.ID)
	if err != nil {
		t.Fatalf("AcceptProposal() error = %v", err)
	}
	if accepted.Status != work.ProposalAccepted {
		t.Errorf("proposal status = %s, want %s", accepted.Status, work.ProposalAccepted)
	}
	if started.Status != work.ProjectInProgress || started.Freelancer != bob {
		t.Errorf("project = {%s, %q}, want {%s, bob}", started.Status, started.Freelancer, work.ProjectInProgress)
	}
	if got := h.events.ofType(domain.EventPairApplied); len(got) != 1 {
		t.Errorf("pair_applied events = %d, want 1", len(got))
	}

	_, _, err = h.work.AcceptProposal(ctx, alice, second.ID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("second AcceptProposal() error = %v, want ErrInvalidTransition", err)
	}
	if s := h.status(t, domain.KindProposal, second.ID); s != work.ProposalPending {
		t.Errorf("second proposal status = %s, want unchanged %s", s, work.ProposalPending)
	}
}

func TestWorkService_AcceptProposalAfterReview(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	first := h.proposal(t, project.ID, bob, 950)
	second := h.proposal(t, project.ID, carol, 900)

	if _, _, err := h.work.AcceptProposal(ctx, alice, first.ID); err != nil {
		t.Fatalf("AcceptProposal() error = %v", err)
	}
	if _, err := h.lifecycle.Transition(ctx, bob, domain.KindProject, project.ID, work.ProjectUnderReview); err != nil {
		t.Fatalf("submit for review error = %v", err)
	}

	_, _, err := h.work.AcceptProposal(ctx, alice, second.ID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("AcceptProposal(sibling under review) error = %v, want ErrInvalidTransition", err)
	}

	got, err := h.work.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if got.Status != work.ProjectUnderReview || got.Freelancer != bob {
		t.Errorf("project = {%s, %q}, want {%s, bob}", got.Status, got.Freelancer, work.ProjectUnderReview)
	}
	accepted, err := h.work.ListProposals(ctx, domain.Filter{Index: domain.IndexStatus, Key: string(work.ProposalAccepted)})
	if err != nil {
		t.Fatalf("ListProposals() error = %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != first.ID {
		t.Errorf("accepted proposals = %+v, want only %d", accepted, first.ID)
	}

	_, err = h.work.SubmitProposal(ctx, &work.Proposal{ProjectID: project.ID, Freelancer: "dave", Bid: 700})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("SubmitProposal(under review) error = %v, want ErrInvalidStatus", err)
	}
	rejected, err := h.work.RejectPendingProposals(ctx, alice, project.ID)
	if err != nil {
		t.Fatalf("RejectPendingProposals(under review) error = %v", err)
	}
	if len(rejected) != 1 || rejected[0].ID != second.ID {
		t.Errorf("rejected = %+v, want only %d", rejected, second.ID)
	}
}

func TestWorkService_AcceptProposalUnauthorized(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t)
	p := h.proposal(t, project.ID, bob, 950)

	for _, caller := range []domain.Principal{bob, carol, ""} {
		if _, _, err := h.work.AcceptProposal(context.Background(), caller, p.ID); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("AcceptProposal(%q) error = %v, want ErrUnauthorized", caller, err)
		}
	}
	if s := h.status(t, domain.KindProject, project.ID); s != work.ProjectOpen {
		t.Errorf("project status = %s, want %s", s, work.ProjectOpen)
	}
}

func TestWorkService_AcceptProposalRollsBack(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	p := h.proposal(t, project.ID, bob, 950)
	h.store.failPuts(domain.KindProject, 0, 1, errDisk)

	_, _, err := h.work.AcceptProposal(ctx, alice, p.ID)

	var pf *domain.PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("AcceptProposal() error = %v, want *PartialFailureError", err)
	}
	if pf.Reason != domain.ReasonRolledBack || !errors.Is(err, errDisk) {
		t.Errorf("partial failure = %+v, want rolled_back caused by disk error", pf)
	}
	if s := h.status(t, domain.KindProposal, p.ID); s != work.ProposalPending {
		t.Errorf("proposal status = %s, want restored %s", s, work.ProposalPending)
	}
	if s := h.status(t, domain.KindProject, project.ID); s != work.ProjectOpen {
		t.Errorf("project status = %s, want %s", s, work.ProjectOpen)
	}

	if _, _, err := h.work.AcceptProposal(ctx, alice, p.ID); err != nil {
		t.Errorf("retry after rollback error = %v, want nil", err)
	}
}

func TestWorkService_AcceptProposalNeedsReconciliation(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t)
	p := h.proposal(t, project.ID, bob, 950)
	h.store.failPuts(domain.KindProject, 0, 1, errDisk)
	h.store.failPuts(domain.KindProposal, 1, 1, errDisk)

	_, _, err := h.work.AcceptProposal(context.Background(), alice, p.ID)

	var pf *domain.PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("AcceptProposal() error = %v, want *PartialFailureError", err)
	}
	if pf.Reason != domain.ReasonNeedsReconciliation || pf.RollbackErr == nil {
		t.Errorf("partial failure = %+v, want needs_reconciliation with rollback error", pf)
	}
	if s := h.status(t, domain.KindProposal, p.ID); s != work.ProposalAccepted {
		t.Errorf("proposal status = %s, want stranded %s", s, work.ProposalAccepted)
	}

	evts := h.events.ofType(domain.EventPartialFailure)
	if len(evts) != 1 || evts[0].Reason != domain.ReasonNeedsReconciliation {
		t.Errorf("partial failure events = %+v, want one needs_reconciliation", evts)
	}
}

func TestWorkService_SubmitProposal(t *testing.T) {
	t.Parallel()

	t.Run("duplicate pending proposal", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		project := h.project(t)
		h.proposal(t, project.ID, bob, 950)

		_, err := h.work.SubmitProposal(context.Background(), &work.Proposal{ProjectID: project.ID, Freelancer: bob, Bid: 800})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("SubmitProposal() error = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("project not accepting", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		project := h.project(t)
		if _, err := h.lifecycle.Transition(context.Background(), alice, domain.KindProject, project.ID, work.ProjectCancelled); err != nil {
			t.Fatalf("cancel project error = %v", err)
		}

		_, err := h.work.SubmitProposal(context.Background(), &work.Proposal{ProjectID: project.ID, Freelancer: bob, Bid: 800})
		if !errors.Is(err, domain.ErrInvalidStatus) {
			t.Errorf("SubmitProposal() error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.work.SubmitProposal(context.Background(), &work.Proposal{ProjectID: 99, Freelancer: bob, Bid: 800})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("SubmitProposal() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid proposal", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.work.SubmitProposal(context.Background(), &work.Proposal{})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Fields["bid"] == "" {
			t.Errorf("SubmitProposal() error = %v, want validation error on bid", err)
		}
	})
}

func TestWorkService_WithdrawAndReject(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	p1 := h.proposal(t, project.ID, bob, 950)
	p2 := h.proposal(t, project.ID, carol, 900)

	if _, err := h.work.WithdrawProposal(ctx, alice, p1.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("WithdrawProposal(client) error = %v, want ErrUnauthorized", err)
	}
	if got, err := h.work.WithdrawProposal(ctx, bob, p1.ID); err != nil || got.Status != work.ProposalWithdrawn {
		t.Errorf("WithdrawProposal(freelancer) = %v, %v; want withdrawn", got, err)
	}

	if _, err := h.work.RejectProposal(ctx, carol, p2.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("RejectProposal(freelancer) error = %v, want ErrUnauthorized", err)
	}
	if got, err := h.work.RejectProposal(ctx, alice, p2.ID); err != nil || got.Status != work.ProposalRejected {
		t.Errorf("RejectProposal(client) = %v, %v; want rejected", got, err)
	}
	if _, err := h.work.RejectProposal(ctx, alice, p2.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second RejectProposal() error = %v, want ErrInvalidTransition", err)
	}
}

func TestWorkService_RejectPendingProposals(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	winner := h.proposal(t, project.ID, bob, 950)
	loser := h.proposal(t, project.ID, carol, 900)

	if _, err := h.work.RejectPendingProposals(ctx, alice, project.ID); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("RejectPendingProposals(open project) error = %v, want ErrInvalidStatus", err)
	}

	if _, _, err := h.work.AcceptProposal(ctx, alice, winner.ID); err != nil {
		t.Fatalf("AcceptProposal() error = %v", err)
	}
	if s := h.status(t, domain.KindProposal, loser.ID); s != work.ProposalPending {
		t.Fatalf("sibling status after accept = %s, want %s", s, work.ProposalPending)
	}

	if _, err := h.work.RejectPendingProposals(ctx, bob, project.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("RejectPendingProposals(freelancer) error = %v, want ErrUnauthorized", err)
	}

	rejected, err := h.work.RejectPendingProposals(ctx, alice, project.ID)
	if err != nil {
		t.Fatalf("RejectPendingProposals() error = %v", err)
	}
	if len(rejected) != 1 || rejected[0].ID != loser.ID || rejected[0].Status != work.ProposalRejected {
		t.Errorf("rejected = %+v, want only proposal %d", rejected, loser.ID)
	}
	if s := h.status(t, domain.KindProposal, winner.ID); s != work.ProposalAccepted {
		t.Errorf("winner status = %s, want %s", s, work.ProposalAccepted)
	}
}

func TestWorkService_ListProposals(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p1 := h.project(t)
	p2 := h.project(t)
	h.proposal(t, p1.ID, bob, 950)
	h.proposal(t, p2.ID, bob, 500)
	h.proposal(t, p2.ID, carol, 450)

	byBob, err := h.work.ListProposals(ctx, domain.Filter{Index: domain.IndexOwner, Key: string(bob)})
	if err != nil || len(byBob) != 2 {
		t.Errorf("ListProposals(owner=bob) = %d, %v; want 2", len(byBob), err)
	}

	all, err := h.work.ListProposals(ctx, domain.Filter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListProposals(all) = %d, %v; want 3", len(all), err)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("ListProposals(all) not ordered by id: %d before %d", all[i-1].ID, all[i].ID)
		}
	}

	if _, err := h.work.ListProposals(ctx, domain.Filter{Index: "nope", Key: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ListProposals(bad index) error = %v, want ErrValidation", err)
	}
}
