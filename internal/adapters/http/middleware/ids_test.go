package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func serveRequestID(header string) (ctxID, respID string) {
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweeps/bounty", http.NoBody)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestID_ReusesUsableHeader(t *testing.T) {
	t.Parallel()

	ctxID, respID := serveRequestID("incoming-123")
	assert.Equal(t, "incoming-123", ctxID)
	assert.Equal(t, ctxID, respID)
}

func TestRequestID_ReplacesUnusableHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing"},
		{name: "too long", header: strings.Repeat("a", 129)},
		{name: "embedded space", header: "req 1"},
		{name: "non ascii", header: "req-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxID, respID := serveRequestID(tt.header)
			assert.Regexp(t, uuidPattern, ctxID)
			assert.Equal(t, ctxID, respID)
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		id, _ := serveRequestID("")
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		withReq  bool
		wantFrom func(rec *httptest.ResponseRecorder) string
	}{
		{
			name:     "reuses caller header",
			header:   "corr-abc",
			wantFrom: func(*httptest.ResponseRecorder) string { return "corr-abc" },
		},
		{
			name:     "falls back to request id",
			withReq:  true,
			wantFrom: func(rec *httptest.ResponseRecorder) string { return rec.Header().Get("X-Request-ID") },
		},
		{
			name:     "header wins over request id",
			header:   "corr-xyz",
			withReq:  true,
			wantFrom: func(*httptest.ResponseRecorder) string { return "corr-xyz" },
		},
		{
			name:     "unusable header falls back to request id",
			header:   "corr\tinjected",
			withReq:  true,
			wantFrom: func(rec *httptest.ResponseRecorder) string { return rec.Header().Get("X-Request-ID") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromMiddleware, fromDomain string
			var handler http.Handler = middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				fromMiddleware = middleware.CorrelationIDFromContext(r.Context())
				fromDomain = domain.CorrelationIDFrom(r.Context())
			}))
			if tt.withReq {
				handler = middleware.RequestID()(handler)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/entities/bounty/1", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			want := tt.wantFrom(rec)
			require.NotEmpty(t, want)
			assert.Equal(t, want, fromMiddleware)
			assert.Equal(t, want, fromDomain)
			assert.Equal(t, want, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDsFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))
	assert.Empty(t, domain.CorrelationIDFrom(ctx))

	ctx = middleware.WithRequestID(ctx, "req-1")
	ctx = middleware.WithCorrelationID(ctx, "corr-1")
	assert.Equal(t, "req-1", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "corr-1", middleware.CorrelationIDFromContext(ctx))
	assert.Equal(t, "corr-1", domain.CorrelationIDFrom(ctx))
}
