// Package events provides event publishers that are not bound to a specific
// downstream: a structured-log publisher and a fan-out over several
// publishers.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var (
	_ ports.EventPublisher = (*LogPublisher)(nil)
	_ ports.EventPublisher = Multi(nil)
)

// LogPublisher writes each event as a structured log record. Partial
// failures are logged at error level, everything else at info.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher that logs to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish never fails.
func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID),
		slog.String("operation", event.Operation),
		slog.String("actor", event.Actor.String()),
		logging.Entity(string(event.Subject.Kind), event.Subject.ID),
		slog.String("from", event.From.String()),
		slog.String("to", event.To.String()),
	}
	if event.CorrelationID != "" {
		attrs = append(attrs, slog.String("correlation_id", event.CorrelationID))
	}
	if event.Related != nil {
		attrs = append(attrs,
			slog.Group("related",
				slog.String("kind", string(event.Related.Kind)),
				slog.Uint64("id", event.Related.ID),
				slog.String("from", event.RelatedFrom.String()),
				slog.String("to", event.RelatedTo.String()),
			),
		)
	}

	level := slog.LevelInfo
	if event.Type == domain.EventPartialFailure {
		level = slog.LevelError
		attrs = append(attrs,
			slog.String("reason", string(event.Reason)),
			slog.String("detail", event.Detail),
		)
	}

	p.logger.LogAttrs(ctx, level, "lifecycle event", append(attrs, slog.String("type", string(event.Type)))...)
	return nil
}

// Multi delivers every event to each publisher in order. A failing
// publisher does not stop delivery to the rest; failures are joined.
type Multi []ports.EventPublisher

// Publish implements ports.EventPublisher.
func (m Multi) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for i, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publisher %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
