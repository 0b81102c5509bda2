package work

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Project statuses.
const (
	ProjectOpen        domain.Status = "open"
	ProjectInProgress  domain.Status = "in_progress"
	ProjectUnderReview domain.Status = "under_review"
	ProjectCompleted   domain.Status = "completed"
	ProjectCancelled   domain.Status = "cancelled"
)

// ProjectGraph is the transition graph for projects. Open -> InProgress
// happens only when a proposal is accepted.
var ProjectGraph = domain.NewGraph(domain.KindProject, ProjectOpen,
	[]domain.Status{ProjectOpen, ProjectInProgress, ProjectUnderReview, ProjectCompleted, ProjectCancelled},
	domain.Paired(ProjectOpen, ProjectInProgress),
	domain.Step(ProjectOpen, ProjectCancelled),
	domain.Step(ProjectInProgress, ProjectUnderReview),
	domain.Step(ProjectInProgress, ProjectCancelled),
	domain.Step(ProjectUnderReview, ProjectCompleted),
	domain.Step(ProjectUnderReview, ProjectInProgress),
	domain.Step(ProjectUnderReview, ProjectCancelled),
)

// Project is a piece of client work open for proposals.
type Project struct {
	domain.Header
	Client      domain.Principal
	Freelancer  domain.Principal
	Title       string
	Description string
	Category    string
	Budget      uint64
	Skills      []string
}

// Kind implements domain.Entity.
func (p *Project) Kind() domain.Kind { return domain.KindProject }

// Graph implements domain.Entity.
func (p *Project) Graph() *domain.Graph { return ProjectGraph }

// Indexes implements domain.Entity.
func (p *Project) Indexes() map[domain.Index]string {
	idx := map[domain.Index]string{
		domain.IndexOwner:    string(p.Client),
		domain.IndexCategory: p.Category,
		domain.IndexStatus:   string(p.Status),
	}
	if p.Freelancer != "" {
		idx[domain.IndexFreelancer] = string(p.Freelancer)
	}
	return idx
}

// Clone implements domain.Entity.
func (p *Project) Clone() domain.Entity {
	c := *p
	c.Skills = slices.Clone(p.Skills)
	return &c
}

// Accepting reports whether a proposal may currently be submitted or
// accepted. A project holds at most one accepted proposal, so once a
// freelancer is assigned it stops accepting whatever its status.
func (p *Project) Accepting() bool {
	if p.Freelancer != "" {
		return false
	}
	return p.Status == ProjectOpen || p.Status == ProjectUnderReview
}

// Validate checks business rules for a new Project.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(string(p.Client)) == "" {
		fields["client"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Category) == "" {
		fields["category"] = domain.MsgRequired
	}
	if p.Budget == 0 {
		fields["budget"] = "must be positive"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
