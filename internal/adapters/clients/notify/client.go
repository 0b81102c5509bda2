// Package notify delivers lifecycle events to the downstream notification
// service. It translates domain events into the service's wire format and
// maps its RFC 9457 error responses back to domain errors.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var (
	_ ports.EventPublisher = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

// EventsPath is the collection the notification service accepts events on.
const EventsPath = "/api/v1/events"

// HeaderIdempotencyKey carries the event ID on every delivery attempt.
const HeaderIdempotencyKey = "Idempotency-Key"

// Client is the outbound adapter for the notification service. Every call
// goes through an [httpclient.Client], which adds retries, circuit breaking
// and tracing.
type Client struct {
	hc     *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a Client sending through client. Its BaseURL should
// point at the notification service root.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{hc: client, logger: logger}
}

// Publish posts the event and expects 202 Accepted. The event ID is sent as
// the Idempotency-Key so a retried delivery is recognisable downstream.
func (c *Client) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(ToEventDTO(event))
	if err != nil {
		return fmt.Errorf("encoding %s event %s: %w", event.Type, event.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hc.BaseURL()+EventsPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request for event %s: %w", event.ID, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderIdempotencyKey, event.ID)

	if err := c.send(req, http.StatusAccepted); err != nil {
		return fmt.Errorf("publishing %s event %s: %w", event.Type, event.ID, err)
	}
	return nil
}

// send executes req and checks the status. httpclient returns both a
// response and an error when retries ran out on a retryable status; the
// service's answer is preferred over the transport error then.
func (c *Client) send(req *http.Request, want int) error {
	ctx := req.Context()
	resp, doErr := c.hc.Do(ctx, req)
	if resp == nil {
		return doErr
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		if err := resp.Body.Close(); err != nil {
			c.logger.WarnContext(ctx, "closing notification response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode == want {
		return doErr
	}
	rerr := responseError(resp)
	c.logger.WarnContext(ctx, "notification service rejected request",
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("detail", rerr.Detail),
	)
	return rerr
}

// Name returns the identifier used in the health registry.
func (c *Client) Name() string {
	return c.hc.Name()
}

// HealthCheck reports the circuit breaker state without a network call.
// Readiness treats this check as optional.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.hc.HealthCheck(ctx)
}
