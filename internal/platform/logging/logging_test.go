package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level       string
		wantEnabled slog.Level
		wantSkipped slog.Level
	}{
		{level: "debug", wantEnabled: slog.LevelDebug, wantSkipped: slog.LevelDebug - 1},
		{level: "DEBUG", wantEnabled: slog.LevelDebug, wantSkipped: slog.LevelDebug - 1},
		{level: "info", wantEnabled: slog.LevelInfo, wantSkipped: slog.LevelDebug},
		{level: "warn", wantEnabled: slog.LevelWarn, wantSkipped: slog.LevelInfo},
		{level: "error", wantEnabled: slog.LevelError, wantSkipped: slog.LevelWarn},
		{level: "info+2", wantEnabled: slog.LevelInfo + 2, wantSkipped: slog.LevelInfo},
		{level: "verbose", wantEnabled: slog.LevelInfo, wantSkipped: slog.LevelDebug},
		{level: "", wantEnabled: slog.LevelInfo, wantSkipped: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", new(bytes.Buffer))
			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.wantEnabled))
			assert.False(t, logger.Enabled(ctx, tt.wantSkipped))
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO","msg":"hello"`},
		{format: "text", want: "level=INFO msg=hello"},
		{format: "xml", want: `"level":"INFO","msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Info("with source")
	logging.New("info", "json", &info).Info("without source")

	assert.Contains(t, debug.String(), `"source"`)
	assert.NotContains(t, info.String(), `"source"`)
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "canonical header key", attr: slog.String("Proxy-Authorization", "Basic Zm9vOmJhcg=="), secret: "Zm9vOmJhcg=="},
		{name: "password", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "webhook secret", attr: slog.String("webhook_secret", "whsec-123"), secret: "whsec-123"},
		{name: "nested in group", attr: slog.Group("notify", slog.String("token", "tkn-9")), secret: "tkn-9"},
		{name: "bearer value under neutral key", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("detail", "retrying with api_key=abc123"), secret: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_LeavesOrdinaryFieldsAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("transition applied",
		slog.String("principal", "alice"),
		slog.String("path", "/api/v1/entities/bounty/7"),
		slog.String("version", "1.2.3"),
	)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "/api/v1/entities/bounty/7")
	assert.Contains(t, out, "1.2.3")
	assert.NotContains(t, out, "[REDACTED]")
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"Authorization", "authorization", "COOKIE", "set-cookie", "X-API-KEY", "x-auth-token"} {
		assert.True(t, logging.IsSensitiveHeader(h), h)
	}
	for _, h := range []string{"Content-Type", "X-Principal-ID", "X-Request-ID", ""} {
		assert.False(t, logging.IsSensitiveHeader(h), h)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := logging.New("info", "json", new(bytes.Buffer))
	second := logging.New("debug", "json", new(bytes.Buffer))

	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestEntity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("paired transition applied",
		logging.Entity("proposal", 42),
		logging.EntityAs("parent", "bounty", 7, slog.String("to", "awarded")),
	)

	out := buf.String()
	assert.Contains(t, out, `"entity":{"kind":"proposal","id":42}`)
	assert.Contains(t, out, `"parent":{"kind":"bounty","id":7,"to":"awarded"}`)
}
