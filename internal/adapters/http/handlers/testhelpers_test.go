package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/escrow"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/work"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request carrying the given caller (none if empty),
// chi params and JSON body (none if nil).
func newRequest(t *testing.T, method, target string, caller domain.Principal, params map[string]string, body any) *http.Request {
	t.Helper()

	var rd io.Reader = http.NoBody
	if body != nil {
		rd = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, target, rd)
	if caller != "" {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), caller))
	}
	return withChiParams(req, params)
}

func meta(id uint64, status domain.Status) domain.Header {
	return domain.Header{ID: id, Status: status, Version: 1, CreatedAt: testTime, UpdatedAt: testTime}
}

func validProject() *work.Project {
	return &work.Project{
		Header:   meta(1, work.ProjectOpen),
		Client:   "alice",
		Title:    "Landing page",
		Category: "web",
		Budget:   500,
	}
}

func validProposal() *work.Proposal {
	return &work.Proposal{
		Header:       meta(2, work.ProposalPending),
		ProjectID:    1,
		Freelancer:   "bob",
		Bid:          450,
		CoverLetter:  "I can do it",
		DeliveryDays: 7,
	}
}

func validBounty() *bounty.Bounty {
	return &bounty.Bounty{
		Header:   meta(3, bounty.StatusOpen),
		Owner:    "alice",
		Title:    "Fix the race",
		Category: "go",
		Reward:   100,
		Deadline: testTime.Add(72 * time.Hour),
	}
}

func validPayment() *escrow.Payment {
	return &escrow.Payment{
		Header:     meta(4, escrow.StatusPending),
		ProjectID:  1,
		Client:     "alice",
		Freelancer: "bob",
		Amount:     450,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) dto.ErrorResponse {
	t.Helper()
	requireStatus(t, rec, wantStatus)
	problem := decodeJSON[dto.ErrorResponse](t, rec)
	if problem.Code != wantCode {
		t.Errorf("problem code = %q, want %q", problem.Code, wantCode)
	}
	return problem
}
