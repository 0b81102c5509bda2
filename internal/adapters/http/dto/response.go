// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

// MetaResponse carries the fields every entity shares.
type MetaResponse struct {
	ID        uint64 `json:"id"`
	Status    string `json:"status"`
	Version   uint64 `json:"version"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toMeta(h *domain.Header) MetaResponse {
	return MetaResponse{
		ID:        h.ID,
		Status:    h.Status.String(),
		Version:   h.Version,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.Format(time.RFC3339),
	}
}

func principals(ps []domain.Principal) []string {
	if len(ps) == 0 {
		return nil
	}
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// ProjectResponse represents a project in HTTP responses.
type ProjectResponse struct {
	MetaResponse
	Client      string   `json:"client"`
	Freelancer  string   `json:"freelancer,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Budget      uint64   `json:"budget"`
	Skills      []string `json:"skills,omitempty"`
}

// ToProjectResponse converts a project to its response DTO.
func ToProjectResponse(p *work.Project) ProjectResponse {
	return ProjectResponse{
		MetaResponse: toMeta(&p.Header),
		Client:       p.Client.String(),
		Freelancer:   p.Freelancer.String(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Budget:       p.Budget,
		Skills:       p.Skills,
	}
}

// ProposalResponse represents a proposal in HTTP responses.
type ProposalResponse struct {
	MetaResponse
	ProjectID    uint64 `json:"project_id"`
	Freelancer   string `json:"freelancer"`
	Bid          uint64 `json:"bid"`
	CoverLetter  string `json:"cover_letter"`
	DeliveryDays int    `json:"delivery_days"`
}

// ToProposalResponse converts a proposal to its response DTO.
func ToProposalResponse(p *work.Proposal) ProposalResponse {
	return ProposalResponse{
		MetaResponse: toMeta(&p.Header),
		ProjectID:    p.ProjectID,
		Freelancer:   p.Freelancer.String(),
		Bid:          p.Bid,
		CoverLetter:  p.CoverLetter,
		DeliveryDays: p.DeliveryDays,
	}
}

// BountyResponse represents a bounty in HTTP responses.
type BountyResponse struct {
	MetaResponse
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Reward      uint64 `json:"reward"`
	Deadline    string `json:"deadline"`
}

// ToBountyResponse converts a bounty to its response DTO.
func ToBountyResponse(b *bounty.Bounty) BountyResponse {
	return BountyResponse{
		MetaResponse: toMeta(&b.Header),
		Owner:        b.Owner.String(),
		Title:        b.Title,
		Description:  b.Description,
		Category:     b.Category,
		Reward:       b.Reward,
		Deadline:     b.Deadline.Format(time.RFC3339),
	}
}

// SubmissionResponse represents a bounty submission in HTTP responses.
type SubmissionResponse struct {
	MetaResponse
	BountyID  uint64 `json:"bounty_id"`
	Submitter string `json:"submitter"`
	Content   string `json:"content"`
	Link      string `json:"link,omitempty"`
}

// ToSubmissionResponse converts a submission to its response DTO.
func ToSubmissionResponse(s *bounty.Submission) SubmissionResponse {
	return SubmissionResponse{
		MetaResponse: toMeta(&s.Header),
		BountyID:     s.BountyID,
		Submitter:    s.Submitter.String(),
		Content:      s.Content,
		Link:         s.Link,
	}
}

// HackathonResponse represents a hackathon in HTTP responses.
type HackathonResponse struct {
	MetaResponse
	Organizer            string `json:"organizer"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Category             string `json:"category,omitempty"`
	Prize                uint64 `json:"prize"`
	RegistrationDeadline string `json:"registration_deadline"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
}

// ToHackathonResponse converts a hackathon to its response DTO.
func ToHackathonResponse(h *hackathon.Hackathon) HackathonResponse {
	return HackathonResponse{
		MetaResponse:         toMeta(&h.Header),
		Organizer:            h.Organizer.String(),
		Title:                h.Title,
		Description:          h.Description,
		Category:             h.Category,
		Prize:                h.Prize,
		RegistrationDeadline: h.RegistrationDeadline.Format(time.RFC3339),
		StartDate:            h.StartDate.Format(time.RFC3339),
		EndDate:              h.EndDate.Format(time.RFC3339),
	}
}

// EntryResponse represents a hackathon entry in HTTP responses.
type EntryResponse struct {
	MetaResponse
	HackathonID uint64   `json:"hackathon_id"`
	TeamLead    string   `json:"team_lead"`
	Members     []string `json:"members,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url,omitempty"`
}

// ToEntryResponse converts an entry to its response DTO.
func ToEntryResponse(e *hackathon.Entry) EntryResponse {
	return EntryResponse{
		MetaResponse: toMeta(&e.Header),
		HackathonID:  e.HackathonID,
		TeamLead:     e.TeamLead.String(),
		Members:      principals(e.Members),
		Name:         e.Name,
		Description:  e.Description,
		RepoURL:      e.RepoURL,
	}
}

// PaymentResponse represents an escrow payment in HTTP responses.
type PaymentResponse struct {
	MetaResponse
	ProjectID  uint64 `json:"project_id"`
	Client     string `json:"client"`
	Freelancer string `json:"freelancer"`
	Amount     uint64 `json:"amount"`
}

// ToPaymentResponse converts a payment to its response DTO.
func ToPaymentResponse(p *escrow.Payment) PaymentResponse {
	return PaymentResponse{
		MetaResponse: toMeta(&p.Header),
		ProjectID:    p.ProjectID,
		Client:       p.Client.String(),
		Freelancer:   p.Freelancer.String(),
		Amount:       p.Amount,
	}
}

// ToEntityResponse converts any entity to the response DTO of its kind.
func ToEntityResponse(e domain.Entity) any {
	switch v := e.(type) {
	case *work.Project:
		return ToProjectResponse(v)
	case *work.Proposal:
		return ToProposalResponse(v)
	case *bounty.Bounty:
		return ToBountyResponse(v)
	case *bounty.Submission:
		return ToSubmissionResponse(v)
	case *hackathon.Hackathon:
		return ToHackathonResponse(v)
	case *hackathon.Entry:
		return ToEntryResponse(v)
	case *escrow.Payment:
		return ToPaymentResponse(v)
	default:
		return toMeta(e.Meta())
	}
}

// ListResponse wraps a page of items.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// ToListResponse converts each item with convert.
func ToListResponse[E, T any](items []E, convert func(E) T) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return ListResponse[T]{Items: out, Count: len(out)}
}

// AcceptProposalResponse reports both sides of an accepted proposal.
type AcceptProposalResponse struct {
	Proposal ProposalResponse `json:"proposal"`
	Project  ProjectResponse  `json:"project"`
}

// AcceptSubmissionResponse reports both sides of an accepted submission.
type AcceptSubmissionResponse struct {
	Submission SubmissionResponse `json:"submission"`
	Bounty     BountyResponse     `json:"bounty"`
}

// DeclareWinnerResponse reports the winning entry and its hackathon.
type DeclareWinnerResponse struct {
	Entry     EntryResponse     `json:"entry"`
	Hackathon HackathonResponse `json:"hackathon"`
}

// RegistrationResponse reports whether a principal is on a team entered in
// a hackathon.
type RegistrationResponse struct {
	HackathonID uint64 `json:"hackathon_id"`
	Principal   string `json:"principal"`
	Registered  bool   `json:"registered"`
}

// SweepResponse reports the outcome of one deadline sweep.
type SweepResponse struct {
	Kind         string `json:"kind"`
	Transitioned int    `json:"transitioned"`
	At           string `json:"at"`
}
