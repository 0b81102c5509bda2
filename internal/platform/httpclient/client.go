// Package httpclient is the outbound HTTP client for downstream services
// such as the notification webhook. A call passes the circuit breaker, then
// the rate limiter, gets request metadata and trace headers, and is retried
// with backoff while the failure looks transient.
//
// Request and correlation IDs placed in the context by the inbound
// middleware are forwarded as X-Request-ID and X-Correlation-ID:
//
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/marketplace-core/internal/platform/config"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
)

// Outcome labels for the client request metrics.
const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeCircuitOpen = "circuit_open"
	outcomeCanceled    = "canceled"
)

type forwardedKey struct{}

// forwarded is the request metadata copied onto outbound calls.
type forwarded struct {
	requestID     string
	correlationID string
}

func forwardedFrom(ctx context.Context) forwarded {
	f, _ := ctx.Value(forwardedKey{}).(forwarded)
	return f
}

// WithRequestID stores the ID forwarded as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	f := forwardedFrom(ctx)
	f.requestID = id
	return context.WithValue(ctx, forwardedKey{}, f)
}

// WithCorrelationID stores the ID forwarded as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	f := forwardedFrom(ctx)
	f.correlationID = id
	return context.WithValue(ctx, forwardedKey{}, f)
}

// retryConfig is the subset of config.RetryConfig the retry loop reads.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client sends requests to one downstream service. It is safe for
// concurrent use.
type Client struct {
	hc      *http.Client
	baseURL string
	name    string
	cb      *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables limiting
	retry   retryConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the downstream called name, which labels its
// spans, metrics and breaker. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		cb:      gobreaker.NewCircuitBreaker[struct{}](breakerSettings(name, cfg.CircuitBreaker, logger)),
		retry: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.Burst)
	}
	return c
}

// breakerSettings trips after MaxFailures consecutive downstream failures.
// A call abandoned because the caller's context ended does not count.
func breakerSettings(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(min(max(cfg.HalfOpenLimit, 0), math.MaxUint32)),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// Do sends req. A non-retryable status returns resp with an open body and
// a nil error. When retries run out on a retryable status both resp and err
// are returned and the caller still closes resp.Body. Breaker rejections
// and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.cb.Execute(func() (struct{}, error) {
		return struct{}{}, c.attempt(ctx, req, &resp)
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// attempt is one breaker-guarded call: rate limit, headers, span, retries.
func (c *Client) attempt(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if f := forwardedFrom(ctx); f.requestID != "" || f.correlationID != "" {
		setIfPresent(req.Header, "X-Request-ID", f.requestID)
		setIfPresent(req.Header, "X-Correlation-ID", f.correlationID)
	}

	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			telemetry.AttrPeerService.String(c.name),
		),
	)
	defer span.End()
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	err := c.doWithRetry(ctx, req.WithContext(ctx), resp)
	if *resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", (*resp).StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func setIfPresent(h http.Header, key, value string) {
	if value != "" {
		h.Set(key, value)
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without touching the network.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.cb.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in state %v", c.name, state)
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(outcome(status, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func outcome(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return outcomeCircuitOpen
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case status > 0 && status < http.StatusBadRequest:
		return outcomeSuccess
	default:
		return outcomeError
	}
}
