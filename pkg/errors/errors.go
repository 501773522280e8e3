package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the message safe to show a caller.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// ErrInternalServerError is the catch-all caller-facing failure.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
