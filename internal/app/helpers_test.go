package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/memory"
	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/policy"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var (
	t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	errDisk = errors.New("disk full")
)

const (
	alice domain.Principal = "alice" // client, owner, organizer
	bob   domain.Principal = "bob"   // freelancer, submitter, team lead
	carol domain.Principal = "carol" // competing freelancer
)

// faultyStore injects Put failures for one kind after a number of
// successful writes of that kind.
type faultyStore struct {
	ports.EntityStore

	mu     sync.Mutex
	faults map[domain.Kind]*fault
}

type fault struct {
	skip int
	fail int
	err  error
}

func (s *faultyStore) failPuts(kind domain.Kind, skip, fail int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.faults == nil {
		s.faults = make(map[domain.Kind]*fault)
	}
	s.faults[kind] = &fault{skip: skip, fail: fail, err: err}
}

func (s *faultyStore) Put(ctx context.Context, e domain.Entity, expected uint64) error {
	s.mu.Lock()
	f := s.faults[e.Kind()]
	var err error
	switch {
	case f == nil:
	case f.skip > 0:
		f.skip--
	case f.fail > 0:
		f.fail--
		err = f.err
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.EntityStore.Put(ctx, e, expected)
}

type eventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (l *eventLog) Publish(_ context.Context, evt domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
	return nil
}

func (l *eventLog) ofType(typ domain.EventType) []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Event
	for _, e := range l.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type harness struct {
	store  *faultyStore
	clock  *clock.Manual
	events *eventLog

	lifecycle *LifecycleService
	work      *WorkService
	bounty    *BountyService
	hackathon *HackathonService
	escrow    *EscrowService
	sweep     *SweepService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:  &faultyStore{EntityStore: memory.New()},
		clock:  clock.NewManual(t0),
		events: &eventLog{},
	}
	machine := lifecycle.NewMachine(h.store, h.clock, lifecycle.WithEvents(h.events))
	core := NewCore(machine, policy.NewGate(), nil)

	h.lifecycle = NewLifecycleService(core, nil)
	h.work = NewWorkService(core, nil)
	h.bounty = NewBountyService(core, nil)
	h.hackathon = NewHackathonService(core, nil)
	h.escrow = NewEscrowService(core, nil)
	h.sweep = NewSweepService(machine, 2, nil, nil)
	return h
}

func (h *harness) project(t *testing.T) *work.Project {
	t.Helper()
	p, err := h.work.CreateProject(context.Background(), &work.Project{
		Client:   alice,
		Title:    "Marketing site",
		Category: "web",
		Budget:   1000,
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	return p
}

func (h *harness) proposal(t *testing.T, projectID uint64, freelancer domain.Principal, bid uint64) *work.Proposal {
	t.Helper()
	p, err := h.work.SubmitProposal(context.Background(), &work.Proposal{
		ProjectID:  projectID,
		Freelancer: freelancer,
		Bid:        bid,
	})
	if err != nil {
		t.Fatalf("SubmitProposal() error = %v", err)
	}
	return p
}

func (h *harness) newBounty(t *testing.T, deadline time.Time) *bounty.Bounty {
	t.Helper()
	b, err := h.bounty.CreateBounty(context.Background(), &bounty.Bounty{
		Owner:    alice,
		Title:    "Fix flaky test",
		Category: "testing",
		Reward:   200,
		Deadline: deadline,
	})
	if err != nil {
		t.Fatalf("CreateBounty() error = %v", err)
	}
	return b
}

func (h *harness) submission(t *testing.T, bountyID uint64, submitter domain.Principal) *bounty.Submission {
	t.Helper()
	s, err := h.bounty.SubmitSolution(context.Background(), &bounty.Submission{
		BountyID:  bountyID,
		Submitter: submitter,
		Link:      "https://example.com/pr/1",
	})
	if err != nil {
		t.Fatalf("SubmitSolution() error = %v", err)
	}
	return s
}

func (h *harness) newHackathon(t *testing.T, registration, end time.Duration) *hackathon.Hackathon {
	t.Helper()
	hk, err := h.hackathon.CreateHackathon(context.Background(), &hackathon.Hackathon{
		Organizer:            alice,
		Title:                "Spring Jam",
		Category:             "games",
		Prize:                500,
		RegistrationDeadline: t0.Add(registration),
		EndDate:              t0.Add(end),
	})
	if err != nil {
		t.Fatalf("CreateHackathon() error = %v", err)
	}
	return hk
}

func (h *harness) payment(t *testing.T, projectID, amount uint64) *escrow.Payment {
	t.Helper()
	p, err := h.escrow.CreateEscrow(context.Background(), &escrow.Payment{
		ProjectID:  projectID,
		Client:     alice,
		Freelancer: bob,
		Amount:     amount,
	})
	if err != nil {
		t.Fatalf("CreateEscrow() error = %v", err)
	}
	return p
}

func (h *harness) status(t *testing.T, kind domain.Kind, id uint64) domain.Status {
	t.Helper()
	e, err := h.lifecycle.Get(context.Background(), kind, id)
	if err != nil {
		t.Fatalf("Get(%s, %d) error = %v", kind, id, err)
	}
	return e.Meta().Status
}
