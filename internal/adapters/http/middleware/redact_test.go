package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    [][2]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
		},
		{
			name: "credentials masked",
			headers: http.Header{
				"Authorization":       {"Bearer secret-token"},
				"Proxy-Authorization": {"Basic Zm9vOmJhcg=="},
				"X-Api-Key":           {"k"},
				"Cookie":              {"session=abc123"},
			},
			want: [][2]string{
				{"Authorization", "[REDACTED]"},
				{"Cookie", "[REDACTED]"},
				{"Proxy-Authorization", "[REDACTED]"},
				{"X-Api-Key", "[REDACTED]"},
			},
		},
		{
			name: "non canonical key still masked",
			headers: http.Header{
				"x-auth-token": {"t"},
			},
			want: [][2]string{{"x-auth-token", "[REDACTED]"}},
		},
		{
			name: "sorted and joined",
			headers: http.Header{
				"X-Principal-Id": {"alice"},
				"Accept":         {"text/html", "application/json"},
				"Content-Type":   {"application/json"},
			},
			want: [][2]string{
				{"Accept", "text/html,application/json"},
				{"Content-Type", "application/json"},
				{"X-Principal-Id", "alice"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)

			got := make([][2]string, 0, len(attrs))
			for _, a := range attrs {
				got = append(got, [2]string{a.Key, a.Value.String()})
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
