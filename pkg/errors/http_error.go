// Package errors holds the HTTP error type returned by delivery layers and
// the classification of upstream failures into user-facing messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error carrying the HTTP status and machine code to send.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose code is derived from the status.
func NewHTTPError(status int, msg string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: codeForStatus(status), Message: msg}
}

// NewHTTPErrorWithCode builds an HTTPError with an explicit machine code.
func NewHTTPErrorWithCode(status int, code, msg string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: msg}
}

// AsHTTPError unwraps err into an HTTPError if one is in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// ErrInternalServerError is the generic 500 returned for unmapped errors.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusPaymentRequired:
		return "PAYMENT_REQUIRED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMIT"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case http.StatusInternalServerError:
		return "INTERNAL_ERROR"
	default:
		return fmt.Sprintf("HTTP_%d", status)
	}
}
