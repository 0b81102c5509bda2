// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// WorkHandler handles HTTP requests for projects and proposals.
type WorkHandler struct {
	svc ports.WorkService
}

// NewWorkHandler creates a new WorkHandler with the given service port.
func NewWorkHandler(svc ports.WorkService) *WorkHandler {
	return &WorkHandler{svc: svc}
}

// CreateProject handles POST /api/v1/projects.
func (h *WorkHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToDomain(caller))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *WorkHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetProject, dto.ToProjectResponse)
}

// ListProjects handles GET /api/v1/projects.
func (h *WorkHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListProjects, dto.ToProjectResponse)
}

// SubmitProposal handles POST /api/v1/projects/{id}/proposals.
func (h *WorkHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	projectID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.SubmitProposalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.SubmitProposal(r.Context(), req.ToDomain(caller, projectID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProposalResponse(created))
}

// ListProjectProposals handles GET /api/v1/projects/{id}/proposals.
func (h *WorkHandler) ListProjectProposals(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListProposals, dto.ToProposalResponse)
}

// RejectPendingProposals handles POST /api/v1/projects/{id}/proposals/reject-pending.
func (h *WorkHandler) RejectPendingProposals(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.RejectPendingProposals, func(ps []*work.Proposal) dto.ListResponse[dto.ProposalResponse] {
		return dto.ToListResponse(ps, dto.ToProposalResponse)
	})
}

// GetProposal handles GET /api/v1/proposals/{id}.
func (h *WorkHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetProposal, dto.ToProposalResponse)
}

// ListProposals handles GET /api/v1/proposals.
func (h *WorkHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListProposals, dto.ToProposalResponse)
}

// WithdrawProposal handles POST /api/v1/proposals/{id}/withdraw.
func (h *WorkHandler) WithdrawProposal(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.WithdrawProposal, dto.ToProposalResponse)
}

// RejectProposal handles POST /api/v1/proposals/{id}/reject.
func (h *WorkHandler) RejectProposal(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.RejectProposal, dto.ToProposalResponse)
}

// AcceptProposal handles POST /api/v1/proposals/{id}/accept. The proposal
// and its project move together; a partial failure is reported as a
// problem response carrying the rollback outcome.
func (h *WorkHandler) AcceptProposal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	proposal, project, err := h.svc.AcceptProposal(r.Context(), caller, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AcceptProposalResponse{
		Proposal: dto.ToProposalResponse(proposal),
		Project:  dto.ToProjectResponse(project),
	})
}
