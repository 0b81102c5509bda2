package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// LifecycleHandler serves kind-agnostic reads and the generic single-entity
// transition under /api/v1/entities/{kind}.
type LifecycleHandler struct {
	svc ports.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler with the given service port.
func NewLifecycleHandler(svc ports.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{svc: svc}
}

// Get handles GET /api/v1/entities/{kind}/{id}.
func (h *LifecycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r, "kind")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), kind, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntityResponse(e))
}

// List handles GET /api/v1/entities/{kind}.
func (h *LifecycleHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r, "kind")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), kind, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(items, dto.ToEntityResponse))
}

// Transition handles POST /api/v1/entities/{kind}/{id}/transitions.
func (h *LifecycleHandler) Transition(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	kind, err := parseKind(r, "kind")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.TransitionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.Transition(r.Context(), caller, kind, id, domain.Status(req.To))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntityResponse(e))
}
