package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

// HeaderPrincipal carries the caller identity established by the
// authenticating gateway in front of the service.
const HeaderPrincipal = "X-Principal-ID"

type principalKey struct{}

// WithPrincipal returns a new context carrying the caller principal.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller principal, or "" and false when
// the request carried none.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok && p != ""
}

// Principal returns middleware that reads the X-Principal-ID header into the
// request context. Requests without the header pass through anonymously;
// handlers that need a caller reject them.
func Principal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderPrincipal))
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), domain.Principal(id))))
		})
	}
}
