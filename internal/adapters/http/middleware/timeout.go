package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
)

// Timeout returns middleware that enforces a request deadline. The handler
// runs on its own goroutine against a buffered writer. If it is still
// running when the deadline passes, the buffered output is dropped and a 504
// problem with code "timeout" goes out instead; later writes from the
// handler fail with http.ErrHandlerTimeout.
//
// The handler's context carries the deadline so store calls give up too. A
// paired transition interrupted this way still rolls back its first step.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan *handlerPanic, 1)
			go func() {
				var p *handlerPanic
				defer func() { finished <- p }()
				defer func() {
					if v := recover(); v != nil {
						p = &handlerPanic{value: v, stack: debug.Stack()}
					}
				}()
				next.ServeHTTP(bw, r)
			}()

			select {
			case p := <-finished:
				if p != nil {
					// Recovery runs on this goroutine, so the panic is raised again here.
					panic(*p)
				}
				bw.copyTo(w)
			case <-ctx.Done():
				bw.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}

// handlerPanic carries a panic from the handler goroutine together with the
// stack where it happened.
type handlerPanic struct {
	value any
	stack []byte
}

func (p handlerPanic) String() string {
	return fmt.Sprint(p.value)
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it is sent. mu guards every field.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.abandoned {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// abandon makes later writes fail.
func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.abandoned = true
}

// copyTo sends the buffered response. The handler has returned, so nothing
// writes concurrently.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}
