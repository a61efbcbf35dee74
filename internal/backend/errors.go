package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimeout indicates a request exceeded its client-side deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrAuthFailed indicates a rejected or malformed authentication
	// exchange.
	ErrAuthFailed = errors.New("authentication failed")
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// StatusCode extracts the HTTP status from an error chain, if present.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// IsUnauthorized reports whether the error is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && (code == http.StatusUnauthorized || code == http.StatusForbidden)
}
