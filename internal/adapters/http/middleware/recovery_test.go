package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLog    []string
	}{
		{
			name: "passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "string panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic("ledger corrupted") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic recovered", "ledger corrupted", "goroutine", "path=/api/v1/payments/9/release"},
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"net/http: abort Handler"},
		},
		{
			name: "headers already sent",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLog:    []string{"late"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/9/release", http.NoBody)
			middleware.Recovery(testLogger(&buf))(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
			if len(tt.wantLog) == 0 {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestRecovery_WritesInternalProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(42)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bounties", http.NoBody))

	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, http.StatusInternalServerError, problem.Status)
	assert.Equal(t, dto.CodeInternal, problem.Code)
	assert.NotContains(t, problem.Detail, "42")
}

func TestRecovery_CatchesPanicInsideTimeout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.Recovery(testLogger(&buf)),
		middleware.Timeout(time.Second),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("store exploded")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/1/release", http.NoBody)
	req.Header.Set(middleware.HeaderPrincipal, "alice")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "store exploded")
	assert.Contains(t, buf.String(), "principal=alice")
}
