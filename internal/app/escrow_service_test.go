package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/memory"
	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/policy"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

func TestEscrowService_DisputeThenRefund(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p := h.payment(t, 1, 950)
	if p.Status != escrow.StatusPending {
		t.Fatalf("CreateEscrow() status = %s, want %s", p.Status, escrow.StatusPending)
	}

	steps := []struct {
		name   string
		op     func(context.Context, domain.Principal, uint64) (*escrow.Payment, error)
		caller domain.Principal
		want   domain.Status
	}{
		{"deposit", h.escrow.Deposit, alice, escrow.StatusEscrowed},
		{"dispute", h.escrow.Dispute, bob, escrow.StatusDisputed},
		{"refund", h.escrow.Refund, alice, escrow.StatusRefunded},
	}
	for _, s := range steps {
		got, err := s.op(ctx, s.caller, p.ID)
		if err != nil {
			t.Fatalf("%s error = %v", s.name, err)
		}
		if got.Status != s.want || got.Amount != 950 {
			t.Errorf("%s = {%s, %d}, want {%s, 950}", s.name, got.Status, got.Amount, s.want)
		}
	}

	if _, err := h.escrow.Release(ctx, alice, p.ID); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("Release() after refund error = %v, want ErrInvalidStatus", err)
	}
}

func TestEscrowService_FreelancerCannotRelease(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p := h.payment(t, 1, 500)
	check := func(stage string) {
		t.Helper()
		if _, err := h.escrow.Release(ctx, bob, p.ID); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Release(freelancer) while %s error = %v, want ErrUnauthorized", stage, err)
		}
	}

	check("pending")
	if _, err := h.escrow.Deposit(ctx, alice, p.ID); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	check("escrowed")
	if _, err := h.escrow.Dispute(ctx, alice, p.ID); err != nil {
		t.Fatalf("Dispute() error = %v", err)
	}
	check("disputed")
	if _, err := h.escrow.Release(ctx, alice, p.ID); err != nil {
		t.Fatalf("Release(client) error = %v", err)
	}
	check("released")
}

func TestEscrowService_Preconditions(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p := h.payment(t, 7, 300)

	tests := []struct {
		name    string
		op      func(context.Context, domain.Principal, uint64) (*escrow.Payment, error)
		caller  domain.Principal
		wantErr error
	}{
		{"release from pending", h.escrow.Release, alice, domain.ErrInvalidStatus},
		{"refund from pending", h.escrow.Refund, alice, domain.ErrInvalidStatus},
		{"dispute from pending", h.escrow.Dispute, bob, domain.ErrInvalidStatus},
		{"deposit by freelancer", h.escrow.Deposit, bob, domain.ErrUnauthorized},
		{"dispute by stranger", h.escrow.Dispute, carol, domain.ErrUnauthorized},
		{"refund by freelancer", h.escrow.Refund, bob, domain.ErrUnauthorized},
	}
	for _, tt := range tests {
		if _, err := tt.op(ctx, tt.caller, p.ID); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	if _, err := h.escrow.Deposit(ctx, alice, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Deposit(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := h.escrow.Deposit(ctx, alice, p.ID); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if _, err := h.escrow.Deposit(ctx, alice, p.ID); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("second Deposit() error = %v, want ErrInvalidStatus", err)
	}
}

func TestEscrowService_OneActivePaymentPerProject(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	first := h.payment(t, 3, 100)

	_, err := h.escrow.CreateEscrow(ctx, &escrow.Payment{ProjectID: 3, Client: alice, Freelancer: bob, Amount: 200})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("CreateEscrow(duplicate) error = %v, want ErrAlreadyExists", err)
	}

	for _, step := range []func(context.Context, domain.Principal, uint64) (*escrow.Payment, error){
		h.escrow.Deposit, h.escrow.Release,
	} {
		if _, err := step(ctx, alice, first.ID); err != nil {
			t.Fatalf("settling first payment: %v", err)
		}
	}

	second := h.payment(t, 3, 200)
	if second.Amount != 200 || second.ID == first.ID {
		t.Errorf("CreateEscrow() after settlement = %+v, want new payment of 200", second)
	}

	byProject, err := h.escrow.ListPayments(ctx, domain.Filter{Index: domain.IndexProject, Key: "3"})
	if err != nil || len(byProject) != 2 {
		t.Errorf("ListPayments(project=3) = %d, %v; want 2", len(byProject), err)
	}
}

func TestEscrowService_PaymentsBypassGenericTransition(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	p := h.payment(t, 1, 100)
	_, err := h.lifecycle.Transition(context.Background(), alice, domain.KindPayment, p.ID, escrow.StatusEscrowed)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Transition(payment) error = %v, want ErrInvalidTransition", err)
	}
}

func TestEscrowService_CreateValidates(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	_, err := h.escrow.CreateEscrow(context.Background(), &escrow.Payment{ProjectID: 1, Client: alice, Freelancer: alice})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["amount"] == "" || verr.Fields["freelancer"] == "" {
		t.Errorf("CreateEscrow() error = %v, want amount and freelancer validation errors", err)
	}
}

// slowListStore widens the window between the active-payment lookup and the
// insert so concurrent creates overlap.
type slowListStore struct {
	ports.EntityStore
}

func (s slowListStore) ListByIndex(ctx context.Context, kind domain.Kind, index domain.Index, key string) ([]domain.Entity, error) {
	time.Sleep(5 * time.Millisecond)
	return s.EntityStore.ListByIndex(ctx, kind, index, key)
}

func TestEscrowService_ConcurrentCreatesForOneProject(t *testing.T) {
	t.Parallel()
	store := slowListStore{EntityStore: memory.New()}
	machine := lifecycle.NewMachine(store, clock.NewManual(t0))
	svc := NewEscrowService(NewCore(machine, policy.NewGate(), nil), nil)
	ctx := context.Background()

	const callers = 50
	var (
		wg       sync.WaitGroup
		created  atomic.Int32
		rejected atomic.Int32
	)
	for range callers {
		wg.Go(func() {
			_, err := svc.CreateEscrow(ctx, &escrow.Payment{ProjectID: 7, Client: alice, Freelancer: bob, Amount: 300})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrAlreadyExists):
				rejected.Add(1)
			default:
				t.Errorf("CreateEscrow() error = %v", err)
			}
		})
	}
	wg.Wait()

	if created.Load() != 1 || rejected.Load() != callers-1 {
		t.Errorf("created = %d, rejected = %d; want 1 and %d", created.Load(), rejected.Load(), callers-1)
	}
	active, err := svc.ListPayments(ctx, domain.Filter{Index: domain.IndexProject, Key: "7"})
	if err != nil {
		t.Fatalf("ListPayments() error = %v", err)
	}
	if len(active) != 1 {
		t.Errorf("payments for project 7 = %d, want 1", len(active))
	}
}
