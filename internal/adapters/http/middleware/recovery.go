package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
)

// errInternalServer is returned to clients when a panic is recovered. The
// panic value and stack are logged, never sent.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream
// handlers, including panics Timeout re-raises from its handler goroutine.
// The panic is logged with its stack, the caller principal and the matched
// route, and a 500 problem response is written unless headers already went
// out.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				stack := debug.Stack()
				if hp, ok := v.(handlerPanic); ok {
					stack = hp.stack
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
					slog.String("principal", r.Header.Get(HeaderPrincipal)),
				)

				if !rw.committed() {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
