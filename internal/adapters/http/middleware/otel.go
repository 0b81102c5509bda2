package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
)

// Span attributes set beyond the HTTP basics.
const (
	attrRoute       = attribute.Key("http.route")
	attrPrincipal   = attribute.Key("marketplace.principal")
	attrProblemCode = attribute.Key("marketplace.problem_code")
)

// OpenTelemetry returns middleware that creates a server span for each
// request and records server request metrics. W3C Trace Context is
// extracted from incoming headers.
//
// Once chi has routed the request the span is renamed after the route
// pattern, so /proposals/7/accept and /proposals/8/accept share a name. A
// problem response adds its code to the span; a partial failure that needs
// reconciliation marks the span as an error even though it is not always a
// 5xx from the client's point of view.
//
// If metrics is nil, metric recording is skipped.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, note := dto.WithProblemNote(ctx)

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.url", r.URL.String()),
			}
			if p := r.Header.Get(HeaderPrincipal); p != "" {
				attrs = append(attrs, attrPrincipal.String(p))
			}

			tracer := otel.GetTracerProvider().Tracer("middleware")
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			rw := newResponseWriter(w)
			routed := r.WithContext(ctx)
			next.ServeHTTP(rw, routed)

			if pattern := routePattern(routed); pattern != "" {
				span.SetName("HTTP " + r.Method + " " + pattern)
				span.SetAttributes(attrRoute.String(pattern))
			}

			status := rw.status
			span.SetAttributes(attribute.Int("http.status_code", status))

			code, reason := note.Get()
			if code != "" {
				span.SetAttributes(attrProblemCode.String(code))
			}
			switch {
			case reason == string(domain.ReasonNeedsReconciliation):
				span.SetStatus(codes.Error, "paired transition needs reconciliation")
			case status >= http.StatusInternalServerError:
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, start, status)
		})
	}
}

// routePattern returns the chi route pattern matched for r, or "" when the
// request was not routed by chi.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

// recordServerMetrics records server request duration and count metrics.
// Safe to call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
