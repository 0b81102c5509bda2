package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders lists, in canonical form, the HTTP headers whose values
// never reach the logs.
var sensitiveHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
	"X-Auth-Token",
}

// sensitiveFields are attribute keys masked wherever they appear, including
// inside groups. The webhook fields cover notification client settings.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"signature",
	"webhook_secret",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment so version strings like 1.2.3
	// are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// IsSensitiveHeader reports whether the named HTTP header carries
// credentials. Matching ignores case.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, http.CanonicalHeaderKey(name))
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New. Header
// names are matched both canonical and lower-cased since call sites use
// either form as the attribute key.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, 2*len(sensitiveHeaders)+len(sensitiveFields)+5)
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h), masq.WithFieldName(strings.ToLower(h)))
	}
	for _, f := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}

