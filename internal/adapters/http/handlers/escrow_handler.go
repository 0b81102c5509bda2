package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// EscrowHandler handles HTTP requests for escrow payments.
type EscrowHandler struct {
	svc ports.EscrowService
}

// NewEscrowHandler creates a new EscrowHandler with the given service port.
func NewEscrowHandler(svc ports.EscrowService) *EscrowHandler {
	return &EscrowHandler{svc: svc}
}

// CreateEscrow handles POST /api/v1/payments.
func (h *EscrowHandler) CreateEscrow(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateEscrowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEscrow(r.Context(), req.ToDomain(caller))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPaymentResponse(created))
}

// GetPayment handles GET /api/v1/payments/{id}.
func (h *EscrowHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.svc.GetPayment, dto.ToPaymentResponse)
}

// ListPayments handles GET /api/v1/payments.
func (h *EscrowHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.svc.ListPayments, dto.ToPaymentResponse)
}

// Deposit handles POST /api/v1/payments/{id}/deposit.
func (h *EscrowHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.Deposit, dto.ToPaymentResponse)
}

// Release handles POST /api/v1/payments/{id}/release.
func (h *EscrowHandler) Release(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.Release, dto.ToPaymentResponse)
}

// Refund handles POST /api/v1/payments/{id}/refund.
func (h *EscrowHandler) Refund(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.Refund, dto.ToPaymentResponse)
}

// Dispute handles POST /api/v1/payments/{id}/dispute.
func (h *EscrowHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	serveCallerAction(w, r, h.svc.Dispute, dto.ToPaymentResponse)
}
