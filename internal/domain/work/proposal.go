package work

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Proposal statuses.
const (
	ProposalPending   domain.Status = "pending"
	ProposalAccepted  domain.Status = "accepted"
	ProposalRejected  domain.Status = "rejected"
	ProposalWithdrawn domain.Status = "withdrawn"
)

// ProposalGraph is the transition graph for proposals.
var ProposalGraph = domain.NewGraph(domain.KindProposal, ProposalPending,
	[]domain.Status{ProposalPending, ProposalAccepted, ProposalRejected, ProposalWithdrawn},
	domain.Paired(ProposalPending, ProposalAccepted),
	domain.Step(ProposalPending, ProposalRejected),
	domain.Step(ProposalPending, ProposalWithdrawn),
)

// Proposal is a freelancer's bid on a project.
type Proposal struct {
	domain.Header
	ProjectID    uint64
	Freelancer   domain.Principal
	Bid          uint64
	CoverLetter  string
	DeliveryDays int
}

// Kind implements domain.Entity.
func (p *Proposal) Kind() domain.Kind { return domain.KindProposal }

// Graph implements domain.Entity.
func (p *Proposal) Graph() *domain.Graph { return ProposalGraph }

// Indexes implements domain.Entity.
func (p *Proposal) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:  string(p.Freelancer),
		domain.IndexParent: strconv.FormatUint(p.ProjectID, 10),
		domain.IndexStatus: string(p.Status),
	}
}

// Clone implements domain.Entity.
func (p *Proposal) Clone() domain.Entity {
	c := *p
	return &c
}

// Validate checks business rules for a new Proposal.
func (p *Proposal) Validate() error {
	fields := make(map[string]string)

	if p.ProjectID == 0 {
		fields["project_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(p.Freelancer)) == "" {
		fields["freelancer"] = domain.MsgRequired
	}
	if p.Bid == 0 {
		fields["bid"] = "must be positive"
	}
	if p.DeliveryDays < 0 {
		fields["delivery_days"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
