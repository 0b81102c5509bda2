// Package logging builds the service's slog loggers and carries them in
// the request context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//
// Error logs name the operation, the entity and the full error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to accept proposal",
//	    slog.String("operation", "AcceptProposal"),
//	    logging.Entity("proposal", id),
//	    slog.Any("error", err),
//	)
//
// Loggers placed in the context by the HTTP middleware already carry
// request_id, correlation_id and principal.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New returns a logger writing to w. level accepts anything
// slog.Level.UnmarshalText does ("debug", "WARN", "info+2"), falling back to
// info. format "text" selects the text handler; anything else is JSON.
// Debug loggers include source locations. Sensitive attributes are masked.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Entity returns the "entity" group identifying one stored entity.
func Entity(kind string, id uint64) slog.Attr {
	return EntityAs("entity", kind, id)
}

// EntityAs is Entity under another key, for logs that name two entities.
func EntityAs(key, kind string, id uint64, extra ...any) slog.Attr {
	args := append([]any{slog.String("kind", kind), slog.Uint64("id", id)}, extra...)
	return slog.Group(key, args...)
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
