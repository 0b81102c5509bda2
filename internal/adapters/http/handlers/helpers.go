package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// filterIndexes are the query parameters accepted as list filters, one per
// store index.
var filterIndexes = []domain.Index{
	domain.IndexOwner,
	domain.IndexCategory,
	domain.IndexStatus,
	domain.IndexParent,
	domain.IndexFreelancer,
	domain.IndexProject,
}

// parseID extracts a positive uint64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (uint64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// parseKind extracts a known entity kind from the chi URL params.
func parseKind(r *http.Request, param string) (domain.Kind, error) {
	kind := domain.Kind(chi.URLParam(r, param))
	if !kind.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: fmt.Sprintf("unknown kind %q", kind)},
		}
	}
	return kind, nil
}

// parseFilter reads at most one index filter from the query string, e.g.
// ?status=open or ?owner=alice. No filter selects everything.
func parseFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()
	var f domain.Filter
	for _, idx := range filterIndexes {
		if !q.Has(string(idx)) {
			continue
		}
		if !f.IsZero() {
			return domain.Filter{}, &domain.ValidationError{
				Fields: map[string]string{"filter": "at most one filter parameter is allowed"},
			}
		}
		f = domain.Filter{Index: idx, Key: q.Get(string(idx))}
	}
	return f, f.Validate()
}

// callerFrom returns the principal established by the Principal middleware.
func callerFrom(r *http.Request) (domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return "", fmt.Errorf("missing %s header: %w", middleware.HeaderPrincipal, domain.ErrUnauthorized)
	}
	return p, nil
}

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Any("error", err))
	}
}

const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes at most maxJSONBodyBytes of the request body into
// dst. On failure it writes a 400 problem and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		msg = fmt.Sprintf("must not exceed %d bytes", maxJSONBodyBytes)
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// serveCallerAction runs action on behalf of the request caller against the
// entity named by the {id} path parameter and writes the converted result
// with 200 OK.
func serveCallerAction[T, R any](
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context, domain.Principal, uint64) (T, error),
	convert func(T) R,
) {
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

	result, err := action(r.Context(), caller, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convert(result))
}

// serveGet loads the entity named by the {id} path parameter.
func serveGet[T, R any](w http.ResponseWriter, r *http.Request, get func(context.Context, uint64) (T, error), convert func(T) R) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convert(result))
}

// serveList lists entities matching the query filter, optionally pinned to
// a parent from the {id} path parameter.
func serveList[E, R any](
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, domain.Filter) ([]E, error),
	convert func(E) R,
) {
	filter, err := parseFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if chi.URLParam(r, "id") != "" {
		if !filter.IsZero() {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{"filter": "not allowed on a nested collection"},
			})
			return
		}
		parent, err := parseID(r, "id")
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		filter = domain.Filter{Index: domain.IndexParent, Key: strconv.FormatUint(parent, 10)}
	}

	items, err := list(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(items, convert))
}
