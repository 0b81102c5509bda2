// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Principal, Timeout
//
// Standard builds that list. Principal only reads the X-Principal-ID header
// set by the gateway; it does not authenticate. Problem responses written by
// handlers are reported back to OpenTelemetry and Logging through
// dto.ProblemNote.
package middleware

import "net/http"

// responseWriter records what the downstream handler sent so that Recovery,
// OpenTelemetry and Logging can report it after the fact.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// committed reports whether any part of the response has gone out.
func (rw *responseWriter) committed() bool { return rw.wroteHeader }

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write sends an implicit 200 when no status was set.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
