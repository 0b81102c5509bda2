package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
	"github.com/jsamuelsen11/marketplace-core/mocks"
)

func TestCreateProject(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWorkService(t)
	svc.EXPECT().CreateProject(mock.Anything, mock.MatchedBy(func(p *work.Project) bool {
		return p.Client == "alice" && p.Title == "Landing page" && p.Budget == 500
	})).Return(validProject(), nil)

	h := handlers.NewWorkHandler(svc)
	rec := httptest.NewRecorder()
	h.CreateProject(rec, newRequest(t, http.MethodPost, "/api/v1/projects", "alice", nil, map[string]any{
		"title": "Landing page", "category": "web", "budget": 500,
	}))

	requireStatus(t, rec, http.StatusCreated)
	got := decodeJSON[dto.ProjectResponse](t, rec)
	if got.ID != 1 || got.Client != "alice" || got.Status != "open" {
		t.Errorf("response = %+v", got)
	}
}

func TestCreateProject_RequiresCaller(t *testing.T) {
	t.Parallel()

	h := handlers.NewWorkHandler(mocks.NewMockWorkService(t))
	rec := httptest.NewRecorder()
	h.CreateProject(rec, newRequest(t, http.MethodPost, "/api/v1/projects", "", nil, map[string]any{
		"title": "Landing page", "category": "web",
	}))

	requireProblem(t, rec, http.StatusForbidden, dto.CodeUnauthorized)
}

func TestCreateProject_InvalidBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewWorkHandler(mocks.NewMockWorkService(t))
	rec := httptest.NewRecorder()
	h.CreateProject(rec, newRequest(t, http.MethodPost, "/api/v1/projects", "alice", nil, map[string]any{"title": " "}))

	problem := requireProblem(t, rec, http.StatusBadRequest, dto.CodeValidation)
	if len(problem.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(problem.Errors))
	}
}

func TestSubmitProposal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "project not accepting", err: domain.ErrInvalidStatus, wantStatus: http.StatusConflict, wantCode: dto.CodeInvalidStatus},
		{name: "duplicate", err: domain.ErrAlreadyExists, wantStatus: http.StatusConflict, wantCode: dto.CodeAlreadyExists},
		{name: "missing project", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: dto.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWorkService(t)
			call := svc.EXPECT().SubmitProposal(mock.Anything, mock.MatchedBy(func(p *work.Proposal) bool {
				return p.ProjectID == 1 && p.Freelancer == "bob"
			}))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(validProposal(), nil)
			}

			h := handlers.NewWorkHandler(svc)
			rec := httptest.NewRecorder()
			h.SubmitProposal(rec, newRequest(t, http.MethodPost, "/api/v1/projects/1/proposals", "bob",
				map[string]string{"id": "1"},
				map[string]any{"bid": 450, "cover_letter": "I can do it", "delivery_days": 7}))

			if tt.err == nil {
				requireStatus(t, rec, tt.wantStatus)
				return
			}
			requireProblem(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestAcceptProposal(t *testing.T) {
	t.Parallel()

	proposal := validProposal()
	proposal.Status = work.ProposalAccepted
	project := validProject()
	project.Status = work.ProjectInProgress
	project.Freelancer = "bob"

	svc := mocks.NewMockWorkService(t)
	svc.EXPECT().AcceptProposal(mock.Anything, domain.Principal("alice"), uint64(2)).Return(proposal, project, nil)

	h := handlers.NewWorkHandler(svc)
	rec := httptest.NewRecorder()
	h.AcceptProposal(rec, newRequest(t, http.MethodPost, "/api/v1/proposals/2/accept", "alice", map[string]string{"id": "2"}, nil))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.AcceptProposalResponse](t, rec)
	if got.Proposal.Status != "accepted" || got.Project.Status != "in_progress" || got.Project.Freelancer != "bob" {
		t.Errorf("response = %+v", got)
	}
}

func TestAcceptProposal_PartialFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reason     domain.PartialFailureReason
		wantStatus int
		wantRetry  bool
	}{
		{"rolled back", domain.ReasonRolledBack, http.StatusConflict, true},
		{"needs reconciliation", domain.ReasonNeedsReconciliation, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWorkService(t)
			svc.EXPECT().AcceptProposal(mock.Anything, domain.Principal("alice"), uint64(2)).Return(nil, nil, &domain.PartialFailureError{
				Operation: "accept_proposal",
				Reason:    tt.reason,
				Applied:   domain.Ref{Kind: domain.KindProposal, ID: 2},
				Failed:    domain.Ref{Kind: domain.KindProject, ID: 1},
				Cause:     domain.ErrStale,
			})

			h := handlers.NewWorkHandler(svc)
			rec := httptest.NewRecorder()
			h.AcceptProposal(rec, newRequest(t, http.MethodPost, "/api/v1/proposals/2/accept", "alice", map[string]string{"id": "2"}, nil))

			problem := requireProblem(t, rec, tt.wantStatus, dto.CodePartialFailure)
			if problem.Reason != string(tt.reason) {
				t.Errorf("Reason = %q, want %q", problem.Reason, tt.reason)
			}
			if problem.Retryable != tt.wantRetry {
				t.Errorf("Retryable = %v, want %v", problem.Retryable, tt.wantRetry)
			}
		})
	}
}

func TestWithdrawProposal_BadID(t *testing.T) {
	t.Parallel()

	h := handlers.NewWorkHandler(mocks.NewMockWorkService(t))
	rec := httptest.NewRecorder()
	h.WithdrawProposal(rec, newRequest(t, http.MethodPost, "/api/v1/proposals/abc/withdraw", "bob", map[string]string{"id": "abc"}, nil))

	requireProblem(t, rec, http.StatusBadRequest, dto.CodeValidation)
}

func TestRejectProposal_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWorkService(t)
	svc.EXPECT().RejectProposal(mock.Anything, domain.Principal("carol"), uint64(2)).Return(nil, domain.ErrUnauthorized)

	h := handlers.NewWorkHandler(svc)
	rec := httptest.NewRecorder()
	h.RejectProposal(rec, newRequest(t, http.MethodPost, "/api/v1/proposals/2/reject", "carol", map[string]string{"id": "2"}, nil))

	requireProblem(t, rec, http.StatusForbidden, dto.CodeUnauthorized)
}

func TestRejectPendingProposals(t *testing.T) {
	t.Parallel()

	rejected := validProposal()
	rejected.Status = work.ProposalRejected

	svc := mocks.NewMockWorkService(t)
	svc.EXPECT().RejectPendingProposals(mock.Anything, domain.Principal("alice"), uint64(1)).Return([]*work.Proposal{rejected}, nil)

	h := handlers.NewWorkHandler(svc)
	rec := httptest.NewRecorder()
	h.RejectPendingProposals(rec, newRequest(t, http.MethodPost, "/api/v1/projects/1/proposals/reject-pending", "alice", map[string]string{"id": "1"}, nil))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.ListResponse[dto.ProposalResponse]](t, rec)
	if got.Count != 1 || got.Items[0].Status != "rejected" {
		t.Errorf("response = %+v", got)
	}
}

func TestListProposals_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		params     map[string]string
		wantFilter domain.Filter
	}{
		{"all", "/api/v1/proposals", nil, domain.Filter{}},
		{"by status", "/api/v1/proposals?status=pending", nil, domain.Filter{Index: domain.IndexStatus, Key: "pending"}},
		{"by freelancer", "/api/v1/proposals?owner=bob", nil, domain.Filter{Index: domain.IndexOwner, Key: "bob"}},
		{"nested", "/api/v1/projects/1/proposals", map[string]string{"id": "1"}, domain.Filter{Index: domain.IndexParent, Key: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWorkService(t)
			svc.EXPECT().ListProposals(mock.Anything, tt.wantFilter).Return([]*work.Proposal{validProposal()}, nil)

			h := handlers.NewWorkHandler(svc)
			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, tt.target, "", tt.params, nil)
			if tt.params != nil {
				h.ListProjectProposals(rec, req)
			} else {
				h.ListProposals(rec, req)
			}

			requireStatus(t, rec, http.StatusOK)
			got := decodeJSON[dto.ListResponse[dto.ProposalResponse]](t, rec)
			if got.Count != 1 {
				t.Errorf("Count = %d, want 1", got.Count)
			}
		})
	}
}

func TestListProjects_RejectsTwoFilters(t *testing.T) {
	t.Parallel()

	h := handlers.NewWorkHandler(mocks.NewMockWorkService(t))
	rec := httptest.NewRecorder()
	h.ListProjects(rec, newRequest(t, http.MethodGet, "/api/v1/projects?status=open&owner=alice", "", nil, nil))

	requireProblem(t, rec, http.StatusBadRequest, dto.CodeValidation)
}
