package errors

import "net/http"

// HTTPError is an error that carries the status code and the client-facing
// message written by pkg/response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Invalid request parameters")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
