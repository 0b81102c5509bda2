package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	return verr.Fields
}

func TestRequests_Validate(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        interface{ Validate() error }
		wantFields []string
	}{
		{"project ok", &dto.CreateProjectRequest{Title: "Site", Category: "web"}, nil},
		{"project blank", &dto.CreateProjectRequest{Title: "  "}, []string{"title", "category"}},
		{"proposal blank", &dto.SubmitProposalRequest{Bid: 10}, []string{"cover_letter"}},
		{"bounty ok", &dto.CreateBountyRequest{Title: "Bug", Category: "go", Deadline: deadline}, nil},
		{"bounty no deadline", &dto.CreateBountyRequest{Title: "Bug", Category: "go"}, []string{"deadline"}},
		{"solution link only", &dto.SubmitSolutionRequest{Link: "https://example.com/pr/1"}, nil},
		{"solution blank", &dto.SubmitSolutionRequest{}, []string{"content"}},
		{"hackathon dates", &dto.CreateHackathonRequest{Title: "Jam"}, []string{"registration_deadline", "end_date"}},
		{"entry members", &dto.CreateEntryRequest{Name: "Team", Members: []string{"bob", " "}}, []string{"members"}},
		{"escrow blank", &dto.CreateEscrowRequest{Amount: 5}, []string{"freelancer", "project_id"}},
		{"transition blank", &dto.TransitionRequest{}, []string{"to"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := fieldsOf(t, tt.req.Validate())
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want keys %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, fields)
				}
			}
		})
	}
}

func TestRequests_ToDomainUsesCaller(t *testing.T) {
	t.Parallel()

	p := (&dto.CreateProjectRequest{Title: " Site ", Category: "web", Budget: 100}).ToDomain("alice")
	if p.Client != "alice" || p.Title != "Site" || p.Freelancer != "" {
		t.Errorf("project = %+v", p)
	}

	prop := (&dto.SubmitProposalRequest{Bid: 90, CoverLetter: "hi"}).ToDomain("bob", 7)
	if prop.Freelancer != "bob" || prop.ProjectID != 7 {
		t.Errorf("proposal = %+v", prop)
	}

	pay := (&dto.CreateEscrowRequest{ProjectID: 7, Freelancer: " bob ", Amount: 90}).ToDomain("alice")
	if pay.Client != "alice" || pay.Freelancer != "bob" {
		t.Errorf("payment = %+v", pay)
	}

	entry := (&dto.CreateEntryRequest{Name: "Team", Members: []string{"carol"}}).ToDomain("bob", 3)
	if entry.TeamLead != "bob" || entry.HackathonID != 3 || len(entry.Members) != 1 || entry.Members[0] != "carol" {
		t.Errorf("entry = %+v", entry)
	}

	local := time.FixedZone("UTC+2", 2*60*60)
	b := (&dto.CreateBountyRequest{Deadline: time.Date(2026, 4, 1, 2, 0, 0, 0, local)}).ToDomain("alice")
	if b.Deadline.Location() != time.UTC || b.Deadline.Hour() != 0 {
		t.Errorf("deadline = %v, want UTC midnight", b.Deadline)
	}
}
