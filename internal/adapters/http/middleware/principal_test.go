package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
)

func TestPrincipal_StoresHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var got domain.Principal
	var ok bool
	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = middleware.PrincipalFromContext(r.Context())
		logging.FromContext(r.Context()).InfoContext(r.Context(), "handled")
	})
	handler := middleware.Chain(
		middleware.Logging(logging.New("info", "json", &buf)),
		middleware.Principal(),
	)(inner)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bounties/1/close", http.NoBody)
	req.Header.Set(middleware.HeaderPrincipal, " alice ")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got != "alice" {
		t.Fatalf("PrincipalFromContext() = %q, %v; want alice, true", got, ok)
	}
	if !strings.Contains(buf.String(), `"principal":"alice"`) {
		t.Errorf("log output missing principal: %s", buf.String())
	}
}

func TestPrincipal_Anonymous(t *testing.T) {
	t.Parallel()

	called := false
	handler := middleware.Principal()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
			t.Errorf("PrincipalFromContext() = %q, want none", p)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !called {
		t.Fatal("next handler not called")
	}
}
