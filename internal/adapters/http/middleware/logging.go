package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion. The
// child logger carries request_id, correlation_id and, when the caller sent
// one, principal; it is stored via logging.WithLogger for downstream use.
//
// Completion is logged at ERROR for 5xx, WARN for 4xx and INFO otherwise,
// with the route pattern and any problem code the handler reported.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, note := dto.WithProblemNote(r.Context())

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if p := strings.TrimSpace(r.Header.Get(HeaderPrincipal)); p != "" {
				attrs = append(attrs, slog.String("principal", p))
			}
			child := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			routed := r.WithContext(ctx)
			next.ServeHTTP(rw, routed)

			logCompletion(ctx, child, routed, rw, note, time.Since(start))
		})
	}
}

func logCompletion(ctx context.Context, logger *slog.Logger, r *http.Request, rw *responseWriter, note *dto.ProblemNote, elapsed time.Duration) {
	status := rw.status
	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Int64("bytes", rw.bytes),
		slog.Duration("duration", elapsed),
	}
	if pattern := routePattern(r); pattern != "" {
		attrs = append(attrs, slog.String("route", pattern))
	}
	if code, reason := note.Get(); code != "" {
		attrs = append(attrs, slog.String("problem_code", code))
		if reason != "" {
			attrs = append(attrs, slog.String("reason", reason))
		}
	}

	logger.LogAttrs(ctx, level, "request completed", attrs...)
}
