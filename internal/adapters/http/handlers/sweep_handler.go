package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// SweepHandler triggers deadline sweeps on demand.
type SweepHandler struct {
	svc   ports.SweepService
	clock ports.Clock
}

// NewSweepHandler creates a new SweepHandler. Sweeps run against clock.Now.
func NewSweepHandler(svc ports.SweepService, clock ports.Clock) *SweepHandler {
	return &SweepHandler{svc: svc, clock: clock}
}

// Sweep handles POST /api/v1/sweeps/{kind}. Sweeps are idempotent, so a
// failed sweep may simply be repeated.
func (h *SweepHandler) Sweep(w http.ResponseWriter, r *http.Request) {
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

	now := h.clock.Now()
	logging.FromContext(r.Context()).InfoContext(r.Context(), "manual sweep requested",
		slog.String("kind", string(kind)),
		slog.String("requested_by", caller.String()),
	)

	n, err := h.svc.Sweep(r.Context(), kind, now)
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "manual sweep failed",
			slog.String("kind", string(kind)),
			slog.Int("transitioned", n),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SweepResponse{
		Kind:         string(kind),
		Transitioned: n,
		At:           now.UTC().Format(time.RFC3339),
	})
}
