package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

func TestLifecycleService_Transition(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	proposal := h.proposal(t, project.ID, bob, 950)

	tests := []struct {
		name    string
		caller  domain.Principal
		kind    domain.Kind
		id      uint64
		to      domain.Status
		wantErr error
	}{
		{"paired edge refused", alice, domain.KindProject, project.ID, work.ProjectInProgress, domain.ErrInvalidTransition},
		{"paired child edge refused", alice, domain.KindProposal, proposal.ID, work.ProposalAccepted, domain.ErrInvalidTransition},
		{"unknown status", alice, domain.KindProject, project.ID, "archived", domain.ErrInvalidTransition},
		{"missing edge", alice, domain.KindProject, project.ID, work.ProjectCompleted, domain.ErrInvalidTransition},
		{"wrong caller", bob, domain.KindProject, project.ID, work.ProjectCancelled, domain.ErrUnauthorized},
		{"no caller", "", domain.KindProject, project.ID, work.ProjectCancelled, domain.ErrUnauthorized},
		{"missing entity", alice, domain.KindProject, 404, work.ProjectCancelled, domain.ErrNotFound},
		{"unknown kind", alice, "invoice", 1, "paid", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.lifecycle.Transition(ctx, tt.caller, tt.kind, tt.id, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transition() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := h.lifecycle.Transition(ctx, alice, domain.KindProject, project.ID, work.ProjectCancelled)
	if err != nil {
		t.Fatalf("Transition(cancel) error = %v", err)
	}
	if got.Meta().Status != work.ProjectCancelled || got.Meta().Version != project.Version+1 {
		t.Errorf("Transition(cancel) = {%s, v%d}, want {cancelled, v%d}", got.Meta().Status, got.Meta().Version, project.Version+1)
	}
	if evts := h.events.ofType(domain.EventTransitioned); len(evts) != 1 || evts[0].Actor != alice {
		t.Errorf("transitioned events = %+v, want one by alice", evts)
	}
}

func TestLifecycleService_DeliveryFlow(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	project := h.project(t)
	proposal := h.proposal(t, project.ID, bob, 950)
	if _, _, err := h.work.AcceptProposal(ctx, alice, proposal.ID); err != nil {
		t.Fatalf("AcceptProposal() error = %v", err)
	}

	if _, err := h.lifecycle.Transition(ctx, alice, domain.KindProject, project.ID, work.ProjectUnderReview); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("client submitting for review error = %v, want ErrUnauthorized", err)
	}

	flow := []struct {
		caller domain.Principal
		to     domain.Status
	}{
		{bob, work.ProjectUnderReview},
		{alice, work.ProjectInProgress},
		{bob, work.ProjectUnderReview},
		{alice, work.ProjectCompleted},
	}
	for _, f := range flow {
		if _, err := h.lifecycle.Transition(ctx, f.caller, domain.KindProject, project.ID, f.to); err != nil {
			t.Fatalf("Transition(-> %s by %s) error = %v", f.to, f.caller, err)
		}
	}
	if s := h.status(t, domain.KindProject, project.ID); s != work.ProjectCompleted {
		t.Errorf("project status = %s, want %s", s, work.ProjectCompleted)
	}
}

func TestLifecycleService_List(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	for range 3 {
		h.project(t)
	}
	if _, err := h.lifecycle.Transition(ctx, alice, domain.KindProject, 2, work.ProjectCancelled); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	all, err := h.lifecycle.List(ctx, domain.KindProject, domain.Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].Meta().ID != 1 || all[2].Meta().ID != 3 {
		t.Errorf("List(all) ids = %v, want [1 2 3]", idsOf(all))
	}

	open, err := h.lifecycle.List(ctx, domain.KindProject, domain.Filter{Index: domain.IndexStatus, Key: string(work.ProjectOpen)})
	if err != nil || len(open) != 2 {
		t.Errorf("List(status=open) = %v, %v; want 2 projects", idsOf(open), err)
	}

	if _, err := h.lifecycle.List(ctx, "invoice", domain.Filter{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("List(unknown kind) error = %v, want ErrValidation", err)
	}
}

func idsOf(list []domain.Entity) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, e := range list {
		out = append(out, e.Meta().ID)
	}
	return out
}
