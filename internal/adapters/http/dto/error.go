package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Code,
// Reason and Retryable are extension members.
type ErrorResponse struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Status    int           `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Instance  string        `json:"instance,omitempty"`
	Code      string        `json:"code,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Retryable bool          `json:"retryable,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem codes reported in ErrorResponse.Code.
const (
	CodeNotFound          = "not_found"
	CodeValidation        = "validation"
	CodeUnauthorized      = "unauthorized"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidStatus     = "invalid_status"
	CodeAlreadyExists     = "already_exists"
	CodeStale             = "stale"
	CodePartialFailure    = "partial_failure"
	CodeUnavailable       = "unavailable"
	CodeTimeout           = "timeout"
	CodeInternal          = "internal"
)

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
		Code:     code,
	}

	var pf *domain.PartialFailureError
	if errors.As(err, &pf) {
		resp.Reason = string(pf.Reason)
		resp.Retryable = pf.Recovered()
	} else if code == CodeStale {
		resp.Retryable = true
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	noteProblem(r.Context(), resp)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify maps domain errors to an HTTP status and problem code. A partial
// failure is checked first because it also matches its underlying cause.
func classify(err error) (int, string) {
	var pf *domain.PartialFailureError
	if errors.As(err, &pf) {
		if pf.Recovered() {
			return http.StatusConflict, CodePartialFailure
		}
		return http.StatusInternalServerError, CodePartialFailure
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, CodeUnauthorized
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusConflict, CodeInvalidStatus
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, CodeAlreadyExists
	case errors.Is(err, domain.ErrStale), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CodeStale
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
