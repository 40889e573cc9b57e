package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries its own HTTP status and optional
// structured details rendered as the "errors" field of the response body.
type HTTPError struct {
	Code    int
	Message string
	Details any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError without details.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewHTTPErrorWithDetails creates an HTTPError carrying details.
func NewHTTPErrorWithDetails(code int, message string, details any) *HTTPError {
	return &HTTPError{Code: code, Message: message, Details: details}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
