package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
)

func TestBountyService_AcceptSubmission(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	b := h.newBounty(t, t0.Add(48*time.Hour))
	winner := h.submission(t, b.ID, bob)
	other := h.submission(t, b.ID, carol)

	if _, _, err := h.bounty.AcceptSubmission(ctx, bob, winner.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("AcceptSubmission(submitter) error = %v, want ErrUnauthorized", err)
	}

	accepted, awarded, err := h.bounty.AcceptSubmission(ctx, alice, winner.ID)
	if err != nil {
		t.Fatalf("AcceptSubmission() error = %v", err)
	}
	if accepted.Status != bounty.SubmissionAccepted || awarded.Status != bounty.StatusAwarded {
		t.Errorf("AcceptSubmission() = {%s, %s}, want {accepted, awarded}", accepted.Status, awarded.Status)
	}

	if _, _, err := h.bounty.AcceptSubmission(ctx, alice, other.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second AcceptSubmission() error = %v, want ErrInvalidTransition", err)
	}

	rejected, err := h.bounty.RejectPendingSubmissions(ctx, alice, b.ID)
	if err != nil {
		t.Fatalf("RejectPendingSubmissions() error = %v", err)
	}
	if len(rejected) != 1 || rejected[0].ID != other.ID {
		t.Errorf("RejectPendingSubmissions() = %+v, want submission %d", rejected, other.ID)
	}
}

func TestBountyService_AcceptAfterClose(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	b := h.newBounty(t, t0.Add(48*time.Hour))
	sub := h.submission(t, b.ID, bob)

	if _, err := h.bounty.CloseBounty(ctx, carol, b.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("CloseBounty(non-owner) error = %v, want ErrUnauthorized", err)
	}
	closed, err := h.bounty.CloseBounty(ctx, alice, b.ID)
	if err != nil || closed.Status != bounty.StatusClosed {
		t.Fatalf("CloseBounty() = %v, %v; want closed", closed, err)
	}

	_, err = h.bounty.SubmitSolution(ctx, &bounty.Submission{BountyID: b.ID, Submitter: carol, Content: "late"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("SubmitSolution(closed) error = %v, want ErrInvalidStatus", err)
	}

	if _, _, err := h.bounty.AcceptSubmission(ctx, alice, sub.ID); err != nil {
		t.Errorf("AcceptSubmission(closed bounty) error = %v, want nil", err)
	}
}

func TestBountyService_SubmitSolution(t *testing.T) {
	t.Parallel()

	t.Run("deadline passed", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		b := h.newBounty(t, t0.Add(time.Hour))
		h.clock.Advance(2 * time.Hour)

		_, err := h.bounty.SubmitSolution(context.Background(), &bounty.Submission{BountyID: b.ID, Submitter: bob, Content: "fix"})
		if !errors.Is(err, domain.ErrInvalidStatus) {
			t.Errorf("SubmitSolution() error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("owner cannot submit", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		b := h.newBounty(t, t0.Add(time.Hour))

		_, err := h.bounty.SubmitSolution(context.Background(), &bounty.Submission{BountyID: b.ID, Submitter: alice, Content: "fix"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SubmitSolution() error = %v, want ErrValidation", err)
		}
	})
}

func TestBountyService_CreateBountyRejectsPastDeadline(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	_, err := h.bounty.CreateBounty(context.Background(), &bounty.Bounty{
		Owner: alice, Title: "t", Category: "c", Reward: 1, Deadline: t0.Add(-time.Minute),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateBounty() error = %v, want ErrValidation", err)
	}
}

func TestBountyService_RejectSubmission(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	b := h.newBounty(t, t0.Add(time.Hour))
	sub := h.submission(t, b.ID, bob)

	if _, err := h.bounty.RejectPendingSubmissions(ctx, alice, b.ID); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("RejectPendingSubmissions(open) error = %v, want ErrInvalidStatus", err)
	}
	got, err := h.bounty.RejectSubmission(ctx, alice, sub.ID)
	if err != nil || got.Status != bounty.SubmissionRejected {
		t.Errorf("RejectSubmission() = %v, %v; want rejected", got, err)
	}

	mine, err := h.bounty.ListSubmissions(ctx, domain.Filter{Index: domain.IndexStatus, Key: string(bounty.SubmissionRejected)})
	if err != nil || len(mine) != 1 {
		t.Errorf("ListSubmissions(rejected) = %d, %v; want 1", len(mine), err)
	}
}
