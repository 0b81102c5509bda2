package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

const msgRequired = domain.MsgRequired

// requireText records fields whose trimmed value is empty.
func requireText(fields map[string]string, values map[string]string) {
	for name, v := range values {
		if strings.TrimSpace(v) == "" {
			fields[name] = msgRequired
		}
	}
}

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateProjectRequest is the JSON body for posting a project. The caller
// becomes the project client.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Budget      uint64   `json:"budget"`
	Skills      []string `json:"skills,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"title": r.Title, "category": r.Category})
	return validationResult(fields)
}

// ToDomain maps the request to a project owned by caller.
func (r *CreateProjectRequest) ToDomain(caller domain.Principal) *work.Project {
	return &work.Project{
		Client:      caller,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Category:    strings.TrimSpace(r.Category),
		Budget:      r.Budget,
		Skills:      r.Skills,
	}
}

// SubmitProposalRequest is the JSON body for bidding on a project. The
// caller is the freelancer.
type SubmitProposalRequest struct {
	Bid          uint64 `json:"bid"`
	CoverLetter  string `json:"cover_letter"`
	DeliveryDays int    `json:"delivery_days"`
}

// Validate checks that required fields are present.
func (r *SubmitProposalRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"cover_letter": r.CoverLetter})
	return validationResult(fields)
}

// ToDomain maps the request to a proposal on projectID.
func (r *SubmitProposalRequest) ToDomain(caller domain.Principal, projectID uint64) *work.Proposal {
	return &work.Proposal{
		ProjectID:    projectID,
		Freelancer:   caller,
		Bid:          r.Bid,
		CoverLetter:  r.CoverLetter,
		DeliveryDays: r.DeliveryDays,
	}
}

// CreateBountyRequest is the JSON body for posting a bounty.
type CreateBountyRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Reward      uint64    `json:"reward"`
	Deadline    time.Time `json:"deadline"`
}

// Validate checks that required fields are present.
func (r *CreateBountyRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"title": r.Title, "category": r.Category})
	if r.Deadline.IsZero() {
		fields["deadline"] = msgRequired
	}
	return validationResult(fields)
}

// ToDomain maps the request to a bounty owned by caller.
func (r *CreateBountyRequest) ToDomain(caller domain.Principal) *bounty.Bounty {
	return &bounty.Bounty{
		Owner:       caller,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Category:    strings.TrimSpace(r.Category),
		Reward:      r.Reward,
		Deadline:    r.Deadline.UTC(),
	}
}

// SubmitSolutionRequest is the JSON body for answering a bounty.
type SubmitSolutionRequest struct {
	Content string `json:"content"`
	Link    string `json:"link,omitempty"`
}

// Validate requires content or a link.
func (r *SubmitSolutionRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" && strings.TrimSpace(r.Link) == "" {
		return &domain.ValidationError{Fields: map[string]string{"content": "content or link is required"}}
	}
	return nil
}

// ToDomain maps the request to a submission on bountyID.
func (r *SubmitSolutionRequest) ToDomain(caller domain.Principal, bountyID uint64) *bounty.Submission {
	return &bounty.Submission{
		BountyID:  bountyID,
		Submitter: caller,
		Content:   r.Content,
		Link:      r.Link,
	}
}

// CreateHackathonRequest is the JSON body for announcing a hackathon.
type CreateHackathonRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	Prize                uint64    `json:"prize"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
}

// Validate checks that required fields are present. Date ordering is
// checked by the domain.
func (r *CreateHackathonRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"title": r.Title})
	if r.RegistrationDeadline.IsZero() {
		fields["registration_deadline"] = msgRequired
	}
	if r.EndDate.IsZero() {
		fields["end_date"] = msgRequired
	}
	return validationResult(fields)
}

// ToDomain maps the request to a hackathon organized by caller.
func (r *CreateHackathonRequest) ToDomain(caller domain.Principal) *hackathon.Hackathon {
	return &hackathon.Hackathon{
		Organizer:            caller,
		Title:                strings.TrimSpace(r.Title),
		Description:          r.Description,
		Category:             r.Category,
		Prize:                r.Prize,
		RegistrationDeadline: r.RegistrationDeadline.UTC(),
		StartDate:            r.StartDate.UTC(),
		EndDate:              r.EndDate.UTC(),
	}
}

// CreateEntryRequest is the JSON body for registering a team entry. The
// caller is the team lead.
type CreateEntryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateEntryRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"name": r.Name})
	for _, m := range r.Members {
		if strings.TrimSpace(m) == "" {
			fields["members"] = "must not contain empty principals"
			break
		}
	}
	return validationResult(fields)
}

// ToDomain maps the request to an entry in hackathonID.
func (r *CreateEntryRequest) ToDomain(caller domain.Principal, hackathonID uint64) *hackathon.Entry {
	members := make([]domain.Principal, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, domain.Principal(strings.TrimSpace(m)))
	}
	return &hackathon.Entry{
		HackathonID: hackathonID,
		TeamLead:    caller,
		Members:     members,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		RepoURL:     r.RepoURL,
	}
}

// CreateEscrowRequest is the JSON body for opening an escrow. The caller is
// the paying client.
type CreateEscrowRequest struct {
	ProjectID  uint64 `json:"project_id"`
	Freelancer string `json:"freelancer"`
	Amount     uint64 `json:"amount"`
}

// Validate checks that required fields are present.
func (r *CreateEscrowRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"freelancer": r.Freelancer})
	if r.ProjectID == 0 {
		fields["project_id"] = msgRequired
	}
	return validationResult(fields)
}

// ToDomain maps the request to a payment paid by caller.
func (r *CreateEscrowRequest) ToDomain(caller domain.Principal) *escrow.Payment {
	return &escrow.Payment{
		ProjectID:  r.ProjectID,
		Client:     caller,
		Freelancer: domain.Principal(strings.TrimSpace(r.Freelancer)),
		Amount:     r.Amount,
	}
}

// TransitionRequest is the JSON body for the generic status change.
type TransitionRequest struct {
	To string `json:"to"`
}

// Validate checks that the target status is present.
func (r *TransitionRequest) Validate() error {
	fields := make(map[string]string)
	requireText(fields, map[string]string{"to": r.To})
	return validationResult(fields)
}
