package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

const maxErrorBodySize = 1 << 20

// ResponseError is a non-success answer from the notification service.
// Err is the domain error the status maps to, or nil for statuses the
// client has no mapping for.
type ResponseError struct {
	Status int
	Detail string
	Err    error
}

func (e *ResponseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("notification service: unexpected status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("notification service: %s: %v", e.Detail, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// problem is the part of an RFC 9457 body the client understands.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// responseError reads resp's body, which the caller still closes, and
// builds the matching *ResponseError. Field-level errors on a 400 or 422
// become a *domain.ValidationError.
func responseError(resp *http.Response) *ResponseError {
	p := readProblem(resp)

	e := &ResponseError{Status: resp.StatusCode, Detail: p.Detail}
	if e.Detail == "" {
		e.Detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		e.Err = domain.ErrNotFound
	case code == http.StatusConflict:
		e.Err = domain.ErrConflict
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		e.Err = domain.ErrUnauthorized
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		e.Err = domain.ErrUnavailable
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		e.Err = domain.ErrValidation
		if len(p.Errors) > 0 {
			fields := make(map[string]string, len(p.Errors))
			for _, fe := range p.Errors {
				fields[strings.TrimPrefix(fe.Location, "body.")] = fe.Message
			}
			e.Err = &domain.ValidationError{Fields: fields}
		}
	}
	return e
}

func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return p
	}
	_ = json.Unmarshal(body, &p)
	return p
}
