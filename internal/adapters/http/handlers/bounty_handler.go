package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// BountyHandler handles HTTP requests for bounties and their submissions.
type BountyHandler struct {
	svc ports.BountyService
}

// NewBountyHandler creates a new BountyHandler with the given service port.
func NewBountyHandler(svc ports.BountyService) *BountyHandler {
	return &BountyHandler{svc: svc}
}

// CreateBounty handles POST /api/v1/bounties.
func (h *BountyHandler) CreateBounty(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateBountyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBounty(r.Context(), req.ToDomain(caller))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBountyResponse(created))
}

// GetBounty handles GET /api/v1/bounties/{id}.
func (h *BountyHandler) GetBounty(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetBounty, dto.ToBountyResponse)
}

// ListBounties handles GET /api/v1/bounties.
func (h *BountyHandler) ListBounties(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListBounties, dto.ToBountyResponse)
}

// CloseBounty handles POST /api/v1/bounties/{id}/close.
func (h *BountyHandler) CloseBounty(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.CloseBounty, dto.ToBountyResponse)
}

// SubmitSolution handles POST /api/v1/bounties/{id}/submissions.
func (h *BountyHandler) SubmitSolution(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	bountyID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.SubmitSolutionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.SubmitSolution(r.Context(), req.ToDomain(caller, bountyID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubmissionResponse(created))
}

// ListBountySubmissions handles GET /api/v1/bounties/{id}/submissions.
func (h *BountyHandler) ListBountySubmissions(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListSubmissions, dto.ToSubmissionResponse)
}

// RejectPendingSubmissions handles POST /api/v1/bounties/{id}/submissions/reject-pending.
func (h *BountyHandler) RejectPendingSubmissions(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.RejectPendingSubmissions, func(ss []*bounty.Submission) dto.ListResponse[dto.SubmissionResponse] {
		return dto.ToListResponse(ss, dto.ToSubmissionResponse)
	})
}

// GetSubmission handles GET /api/v1/submissions/{id}.
func (h *BountyHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetSubmission, dto.ToSubmissionResponse)
}

// ListSubmissions handles GET /api/v1/submissions.
func (h *BountyHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListSubmissions, dto.ToSubmissionResponse)
}

// RejectSubmission handles POST /api/v1/submissions/{id}/reject.
func (h *BountyHandler) RejectSubmission(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.RejectSubmission, dto.ToSubmissionResponse)
}

// AcceptSubmission handles POST /api/v1/submissions/{id}/accept.
func (h *BountyHandler) AcceptSubmission(w http.ResponseWriter, r *http.Request) {
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

	submission, awarded, err := h.svc.AcceptSubmission(r.Context(), caller, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AcceptSubmissionResponse{
		Submission: dto.ToSubmissionResponse(submission),
		Bounty:     dto.ToBountyResponse(awarded),
	})
}
