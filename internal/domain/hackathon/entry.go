package hackathon

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Entry statuses.
const (
	EntryDraft       domain.Status = "draft"
	EntrySubmitted   domain.Status = "submitted"
	EntryUnderReview domain.Status = "under_review"
	EntryFinalist    domain.Status = "finalist"
	EntryWinner      domain.Status = "winner"
	EntryCompleted   domain.Status = "completed"
)

// EntryGraph is the transition graph for hackathon projects. Winner is
// reached only together with completing the hackathon.
var EntryGraph = domain.NewGraph(domain.KindEntry, EntryDraft,
	[]domain.Status{EntryDraft, EntrySubmitted, EntryUnderReview, EntryFinalist, EntryWinner, EntryCompleted},
	domain.Step(EntryDraft, EntrySubmitted),
	domain.Step(EntrySubmitted, EntryUnderReview),
	domain.Step(EntryUnderReview, EntryFinalist),
	domain.Step(EntryUnderReview, EntryCompleted),
	domain.Paired(EntryFinalist, EntryWinner),
	domain.Step(EntryFinalist, EntryCompleted),
)

// Entry is a team project entered in a hackathon.
type Entry struct {
	domain.Header
	HackathonID uint64
	TeamLead    domain.Principal
	Members     []domain.Principal
	Name        string
	Description string
	RepoURL     string
}

// Kind implements domain.Entity.
func (e *Entry) Kind() domain.Kind { return domain.KindEntry }

// Graph implements domain.Entity.
func (e *Entry) Graph() *domain.Graph { return EntryGraph }

// Indexes implements domain.Entity.
func (e *Entry) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:  string(e.TeamLead),
		domain.IndexParent: strconv.FormatUint(e.HackathonID, 10),
		domain.IndexStatus: string(e.Status),
	}
}

// Clone implements domain.Entity.
func (e *Entry) Clone() domain.Entity {
	c := *e
	c.Members = slices.Clone(e.Members)
	return &c
}

// Claims implements domain.Claimant. An entry is its team lead's
// registration, so a principal leads at most one entry per hackathon.
func (e *Entry) Claims() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner: strconv.FormatUint(e.HackathonID, 10) + "/" + string(e.TeamLead),
	}
}

// Includes reports whether p leads or is a member of the entry's team.
func (e *Entry) Includes(p domain.Principal) bool {
	return p != "" && (p == e.TeamLead || slices.Contains(e.Members, p))
}

// Validate checks business rules for a new Entry.
func (e *Entry) Validate() error {
	fields := make(map[string]string)

	if e.HackathonID == 0 {
		fields["hackathon_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(e.TeamLead)) == "" {
		fields["team_lead"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
