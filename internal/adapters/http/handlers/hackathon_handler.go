package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// HackathonHandler handles HTTP requests for hackathons and team entries.
type HackathonHandler struct {
	svc ports.HackathonService
}

// NewHackathonHandler creates a new HackathonHandler with the given service port.
func NewHackathonHandler(svc ports.HackathonService) *HackathonHandler {
	return &HackathonHandler{svc: svc}
}

// CreateHackathon handles POST /api/v1/hackathons.
func (h *HackathonHandler) CreateHackathon(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateHackathonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateHackathon(r.Context(), req.ToDomain(caller))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToHackathonResponse(created))
}

// GetHackathon handles GET /api/v1/hackathons/{id}.
func (h *HackathonHandler) GetHackathon(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetHackathon, dto.ToHackathonResponse)
}

// ListHackathons handles GET /api/v1/hackathons.
func (h *HackathonHandler) ListHackathons(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListHackathons, dto.ToHackathonResponse)
}

// UpcomingHackathons handles GET /api/v1/hackathons/upcoming.
func (h *HackathonHandler) UpcomingHackathons(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.UpcomingHackathons(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(found, dto.ToHackathonResponse))
}

// WinningEntries handles GET /api/v1/hackathons/{id}/winners.
func (h *HackathonHandler) WinningEntries(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	winners, err := h.svc.WinningEntries(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(winners, dto.ToEntryResponse))
}

// IsRegistered handles GET /api/v1/hackathons/{id}/registrations/{principal}.
func (h *HackathonHandler) IsRegistered(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	user := domain.Principal(chi.URLParam(r, "principal"))
	if user == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"principal": "is required"},
		})
		return
	}

	registered, err := h.svc.IsRegistered(r.Context(), id, user)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RegistrationResponse{
		HackathonID: id,
		Principal:   user.String(),
		Registered:  registered,
	})
}

// CreateEntry handles POST /api/v1/hackathons/{id}/entries.
func (h *HackathonHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	hackathonID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEntry(r.Context(), req.ToDomain(caller, hackathonID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEntryResponse(created))
}

// ListHackathonEntries handles GET /api/v1/hackathons/{id}/entries.
func (h *HackathonHandler) ListHackathonEntries(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListEntries, dto.ToEntryResponse)
}

// GetEntry handles GET /api/v1/entries/{id}.
func (h *HackathonHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetEntry, dto.ToEntryResponse)
}

// ListEntries handles GET /api/v1/entries.
func (h *HackathonHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListEntries, dto.ToEntryResponse)
}

// DeclareWinner handles POST /api/v1/entries/{id}/win.
func (h *HackathonHandler) DeclareWinner(w http.ResponseWriter, r *http.Request) {
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

	entry, completed, err := h.svc.DeclareWinner(r.Context(), caller, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeclareWinnerResponse{
		Entry:     dto.ToEntryResponse(entry),
		Hackathon: dto.ToHackathonResponse(completed),
	})
}
