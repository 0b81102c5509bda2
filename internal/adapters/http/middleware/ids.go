package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxInboundIDLen caps caller-supplied request and correlation IDs.
	maxInboundIDLen = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// usableID reports whether a caller-supplied ID can be echoed back and
// written to logs and the event journal as is: printable ASCII without
// spaces, at most maxInboundIDLen bytes.
func usableID(id string) bool {
	if id == "" || len(id) > maxInboundIDLen {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}

func stringValue(ctx context.Context, key any) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// WithRequestID stores id in ctx, including the copy httpclient forwards on
// outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey{})
}

// WithCorrelationID stores id in ctx for this package, for httpclient, and
// for lifecycle events, which record it so the events of one request can be
// found together.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	ctx = httpclient.WithCorrelationID(ctx, id)
	return domain.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey{})
}

// RequestID returns middleware that gives every request an X-Request-ID,
// reusing the caller's when usableID accepts it and minting a UUID v4
// otherwise. The ID is echoed in the response.
func RequestID() func(http.Handler) http.Handler {
	return idMiddleware(headerRequestID, func(*http.Request) string { return uuid.NewString() }, WithRequestID)
}

// CorrelationID returns middleware that reuses a usable caller
// X-Correlation-ID or falls back to the request ID. It must run after
// RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return idMiddleware(headerCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	}, WithCorrelationID)
}

func idMiddleware(header string, fallback func(*http.Request) string, store func(context.Context, string) context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !usableID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}
