package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.EscrowService = (*EscrowService)(nil)

// EscrowService implements the escrow protocol over payment entities. The
// caller is checked before the payment's status, so a caller without rights
// is told so whatever state the payment is in.
type EscrowService struct {
	core   Core
	logger *slog.Logger
}

// NewEscrowService creates an EscrowService. A nil logger discards output.
func NewEscrowService(core Core, logger *slog.Logger) *EscrowService {
	return &EscrowService{core: core, logger: orDiscard(logger)}
}

// CreateEscrow stores a Pending payment for a project that has no active
// payment. The amount is fixed here for the payment's lifetime. The lookup
// gives a descriptive error; the store's project claim decides concurrent
// creates.
func (s *EscrowService) CreateEscrow(ctx context.Context, p *escrow.Payment) (*escrow.Payment, error) {
	s.logger.InfoContext(ctx, "creating escrow",
		slog.Uint64("project_id", p.ProjectID),
		slog.Uint64("amount", p.Amount),
	)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ListPayments(ctx, domain.Filter{
		Index: domain.IndexProject,
		Key:   strconv.FormatUint(p.ProjectID, 10),
	})
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Active() {
			return nil, fmt.Errorf("%w: project %d already has active payment %d (%s)",
				domain.ErrAlreadyExists, p.ProjectID, e.ID, e.Status)
		}
	}

	created, err := s.core.Machine.Create(ctx, p.Client, p)
	if err != nil {
		logFailure(ctx, s.logger, "CreateEscrow", domain.KindPayment, 0, err)
		return nil, err
	}
	return lifecycle.As[*escrow.Payment](created)
}

// Deposit records that the client funded the escrow: Pending -> Escrowed.
func (s *EscrowService) Deposit(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error) {
	return s.move(ctx, "deposit", caller, id, escrow.StatusEscrowed)
}

// Release hands the funds to the freelancer: Escrowed or Disputed -> Released.
func (s *EscrowService) Release(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error) {
	return s.move(ctx, "release", caller, id, escrow.StatusReleased)
}

// Refund returns the funds to the client: Escrowed or Disputed -> Refunded.
func (s *EscrowService) Refund(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error) {
	return s.move(ctx, "refund", caller, id, escrow.StatusRefunded)
}

// Dispute flags an escrowed payment for resolution. Either party may dispute.
func (s *EscrowService) Dispute(ctx context.Context, caller domain.Principal, id uint64) (*escrow.Payment, error) {
	return s.move(ctx, "dispute", caller, id, escrow.StatusDisputed)
}

func (s *EscrowService) move(ctx context.Context, op string, caller domain.Principal, id uint64, to domain.Status) (*escrow.Payment, error) {
	s.logger.InfoContext(ctx, "escrow operation",
		slog.String("operation", op),
		slog.Uint64("payment_id", id),
	)

	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.core.Gate.Authorize(caller, p, to, nil); err != nil {
		logFailure(ctx, s.logger, op, domain.KindPayment, id, err)
		return nil, err
	}
	if !escrow.Graph.Allows(p.Status, to) {
		return nil, fmt.Errorf("%w: cannot %s payment %d while %s", domain.ErrInvalidStatus, op, id, p.Status)
	}

	next, err := s.core.Machine.Transition(ctx, lifecycle.Change{
		Actor:     caller,
		Operation: op,
		Entity:    p,
		To:        to,
	})
	if err != nil {
		logFailure(ctx, s.logger, op, domain.KindPayment, id, err)
		return nil, err
	}
	return lifecycle.As[*escrow.Payment](next)
}

// GetPayment returns the payment with id.
func (s *EscrowService) GetPayment(ctx context.Context, id uint64) (*escrow.Payment, error) {
	return lifecycle.Load[*escrow.Payment](ctx, s.core.store(), domain.KindPayment, id)
}

// ListPayments returns payments selected by filter.
func (s *EscrowService) ListPayments(ctx context.Context, filter domain.Filter) ([]*escrow.Payment, error) {
	return list[*escrow.Payment](ctx, s.core.store(), escrow.Graph, filter)
}
