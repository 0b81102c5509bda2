package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

func newProject(id uint64, client string) *work.Project {
	return &work.Project{
		Header:   domain.Header{ID: id, Status: work.ProjectOpen},
		Client:   domain.Principal(client),
		Title:    "Landing page",
		Category: "web",
		Budget:   1000,
		Skills:   []string{"go"},
	}
}

func TestStore_PutCreateThenGet(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	p := newProject(1, "alice")
	if err := s.Put(ctx, p, 0); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if p.Version != 1 {
		t.Errorf("Version after create = %d, want 1", p.Version)
	}

	got, err := s.Get(ctx, domain.KindProject, 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Meta().Version != 1 || got.(*work.Project).Client != "alice" {
		t.Errorf("Get() = %+v, want alice's project at version 1", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()
	s := New()

	_, err := s.Get(context.Background(), domain.KindProject, 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_PutVersionMismatch(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	p := newProject(1, "alice")
	_ = s.Put(ctx, p, 0)

	if err := s.Put(ctx, newProject(1, "alice"), 0); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate create error = %v, want ErrConflict", err)
	}

	stale := newProject(1, "alice")
	stale.Version = 1
	_ = s.Put(ctx, stale, 1)

	again := newProject(1, "alice")
	if err := s.Put(ctx, again, 1); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("stale update error = %v, want ErrConflict", err)
	}
}

func TestStore_ClaimsAreExclusive(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	payment := func(id uint64, status domain.Status) *escrow.Payment {
		return &escrow.Payment{
			Header:    domain.Header{ID: id, Status: status},
			ProjectID: 7, Client: "alice", Freelancer: "bob", Amount: 500,
		}
	}

	if err := s.Put(ctx, payment(1, escrow.StatusPending), 0); err != nil {
		t.Fatalf("Put(first) error = %v", err)
	}
	if err := s.Put(ctx, payment(2, escrow.StatusPending), 0); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Put(second active) error = %v, want ErrAlreadyExists", err)
	}
	if _, err := s.Get(ctx, domain.KindPayment, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("rejected payment stored: Get error = %v", err)
	}
	if err := s.Put(ctx, payment(1, escrow.StatusEscrowed), 1); err != nil {
		t.Fatalf("Put(holder update) error = %v", err)
	}
	if err := s.Put(ctx, payment(1, escrow.StatusReleased), 2); err != nil {
		t.Fatalf("Put(release) error = %v", err)
	}
	if err := s.Put(ctx, payment(2, escrow.StatusPending), 0); err != nil {
		t.Errorf("Put(after release) error = %v, want claim freed", err)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	p := newProject(1, "alice")
	_ = s.Put(ctx, p, 0)
	p.Title = "mutated after put"
	p.Skills[0] = "rust"

	got, _ := s.Get(ctx, domain.KindProject, 1)
	gp := got.(*work.Project)
	if gp.Title != "Landing page" || gp.Skills[0] != "go" {
		t.Errorf("stored entity changed through caller's pointer: %+v", gp)
	}
}

func TestStore_ListByIndexTracksStatus(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	for id := uint64(1); id <= 3; id++ {
		_ = s.Put(ctx, newProject(id, "alice"), 0)
	}

	moved := newProject(2, "alice")
	moved.Status = work.ProjectCancelled
	moved.Version = 1
	if err := s.Put(ctx, moved, 1); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	open, _ := s.ListByIndex(ctx, domain.KindProject, domain.IndexStatus, string(work.ProjectOpen))
	if len(open) != 2 || open[0].Meta().ID != 1 || open[1].Meta().ID != 3 {
		t.Errorf("open projects = %v, want ids 1 and 3", ids(open))
	}

	cancelled, _ := s.ListByIndex(ctx, domain.KindProject, domain.IndexStatus, string(work.ProjectCancelled))
	if len(cancelled) != 1 || cancelled[0].Meta().ID != 2 {
		t.Errorf("cancelled projects = %v, want id 2", ids(cancelled))
	}

	owned, _ := s.ListByIndex(ctx, domain.KindProject, domain.IndexOwner, "alice")
	if len(owned) != 3 {
		t.Errorf("alice's projects = %v, want 3", ids(owned))
	}
}

func TestStore_NextIDSkipsStoredIDs(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_ = s.Put(ctx, newProject(5, "alice"), 0)

	id, err := s.NextID(ctx, domain.KindProject)
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id != 6 {
		t.Errorf("NextID() = %d, want 6", id)
	}
	if other, _ := s.NextID(ctx, domain.KindBounty); other != 1 {
		t.Errorf("NextID(bounty) = %d, want 1", other)
	}
}

func ids(list []domain.Entity) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, e := range list {
		out = append(out, e.Meta().ID)
	}
	return out
}
