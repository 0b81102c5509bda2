// Package escrow models payments held in trust between a client and a
// freelancer.
//
// A Payment's Amount is fixed by CreateEscrow; lifecycle operations change
// only Status and UpdatedAt.
package escrow

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Payment statuses.
const (
	StatusPending  domain.Status = "pending"
	StatusEscrowed domain.Status = "escrowed"
	StatusReleased domain.Status = "released"
	StatusRefunded domain.Status = "refunded"
	StatusDisputed domain.Status = "disputed"
)

// Graph is the transition graph for payments. Released and Refunded are
// reachable only from Escrowed or Disputed.
var Graph = domain.NewGraph(domain.KindPayment, StatusPending,
	[]domain.Status{StatusPending, StatusEscrowed, StatusReleased, StatusRefunded, StatusDisputed},
	domain.Step(StatusPending, StatusEscrowed),
	domain.Step(StatusEscrowed, StatusReleased),
	domain.Step(StatusEscrowed, StatusRefunded),
	domain.Step(StatusEscrowed, StatusDisputed),
	domain.Step(StatusDisputed, StatusReleased),
	domain.Step(StatusDisputed, StatusRefunded),
)

// Payment is an escrowed amount tied to a project.
type Payment struct {
	domain.Header
	ProjectID  uint64
	Client     domain.Principal
	Freelancer domain.Principal
	Amount     uint64
}

// Kind implements domain.Entity.
func (p *Payment) Kind() domain.Kind { return domain.KindPayment }

// Graph implements domain.Entity.
func (p *Payment) Graph() *domain.Graph { return Graph }

// Indexes implements domain.Entity.
func (p *Payment) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:      string(p.Client),
		domain.IndexFreelancer: string(p.Freelancer),
		domain.IndexProject:    strconv.FormatUint(p.ProjectID, 10),
		domain.IndexStatus:     string(p.Status),
	}
}

// Clone implements domain.Entity.
func (p *Payment) Clone() domain.Entity {
	c := *p
	return &c
}

// Claims implements domain.Claimant: an active payment holds its project, so
// a project has at most one active payment.
func (p *Payment) Claims() map[domain.Index]string {
	if !p.Active() {
		return nil
	}
	return map[domain.Index]string{domain.IndexProject: strconv.FormatUint(p.ProjectID, 10)}
}

// Active reports whether the payment can still change status.
func (p *Payment) Active() bool {
	return !Graph.IsTerminal(p.Status)
}

// Party reports whether caller is the client or the freelancer.
func (p *Payment) Party(caller domain.Principal) bool {
	return caller != "" && (caller == p.Client || caller == p.Freelancer)
}

// Validate checks business rules for a new Payment.
func (p *Payment) Validate() error {
	fields := make(map[string]string)

	if p.ProjectID == 0 {
		fields["project_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(p.Client)) == "" {
		fields["client"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(p.Freelancer)) == "" {
		fields["freelancer"] = domain.MsgRequired
	}
	if p.Client != "" && p.Client == p.Freelancer {
		fields["freelancer"] = "must differ from client"
	}
	if p.Amount == 0 {
		fields["amount"] = "must be positive"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
