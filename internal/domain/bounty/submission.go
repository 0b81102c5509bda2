package bounty

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// Submission statuses.
const (
	SubmissionPending  domain.Status = "pending"
	SubmissionAccepted domain.Status = "accepted"
	SubmissionRejected domain.Status = "rejected"
)

// SubmissionGraph is the transition graph for bounty submissions.
var SubmissionGraph = domain.NewGraph(domain.KindSubmission, SubmissionPending,
	[]domain.Status{SubmissionPending, SubmissionAccepted, SubmissionRejected},
	domain.Paired(SubmissionPending, SubmissionAccepted),
	domain.Step(SubmissionPending, SubmissionRejected),
)

// Submission is a proposed solution to a bounty.
type Submission struct {
	domain.Header
	BountyID  uint64
	Submitter domain.Principal
	Content   string
	Link      string
}

// Kind implements domain.Entity.
func (s *Submission) Kind() domain.Kind { return domain.KindSubmission }

// Graph implements domain.Entity.
func (s *Submission) Graph() *domain.Graph { return SubmissionGraph }

// Indexes implements domain.Entity.
func (s *Submission) Indexes() map[domain.Index]string {
	return map[domain.Index]string{
		domain.IndexOwner:  string(s.Submitter),
		domain.IndexParent: strconv.FormatUint(s.BountyID, 10),
		domain.IndexStatus: string(s.Status),
	}
}

// Clone implements domain.Entity.
func (s *Submission) Clone() domain.Entity {
	c := *s
	return &c
}

// Validate checks business rules for a new Submission.
func (s *Submission) Validate() error {
	fields := make(map[string]string)

	if s.BountyID == 0 {
		fields["bounty_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(s.Submitter)) == "" {
		fields["submitter"] = domain.MsgRequired
	}
	if strings.TrimSpace(s.Content) == "" && strings.TrimSpace(s.Link) == "" {
		fields["content"] = "content or link is required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
