package errors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// Codes returned by Classify.
const (
	CodeNetwork   = "NETWORK_ERROR"
	CodeAuth      = "AUTH_ERROR"
	CodeRateLimit = "RATE_LIMIT"
	CodeNotFound  = "NOT_FOUND"
	CodeServer    = "SERVER_ERROR"
	CodeTimeout   = "TIMEOUT"
	CodeUnknown   = "UNKNOWN_ERROR"
)

// AppError is an upstream failure translated for end users.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Retryable  bool
}

// StatusCoder is implemented by upstream client errors that know the HTTP
// status they received.
type StatusCoder interface {
	HTTPStatus() int
}

var catalogue = map[string]AppError{
	CodeNetwork: {
		Code: CodeNetwork, StatusCode: http.StatusServiceUnavailable, Retryable: true,
		Message: "Hmm, looks like there's a connection issue. Check your internet and try again!",
	},
	CodeAuth: {
		Code: CodeAuth, StatusCode: http.StatusUnauthorized, Retryable: false,
		Message: "Something's not quite right with the setup. Please check the configuration.",
	},
	CodeRateLimit: {
		Code: CodeRateLimit, StatusCode: http.StatusTooManyRequests, Retryable: true,
		Message: "Whoa there! I need a quick breather. Give me a moment and try again!",
	},
	CodeNotFound: {
		Code: CodeNotFound, StatusCode: http.StatusNotFound, Retryable: false,
		Message: "Couldn't find what I was looking for. Let's try something else!",
	},
	CodeServer: {
		Code: CodeServer, StatusCode: http.StatusInternalServerError, Retryable: true,
		Message: "Yikes! Something went wrong on my end. Give it another shot!",
	},
	CodeTimeout: {
		Code: CodeTimeout, StatusCode: http.StatusRequestTimeout, Retryable: true,
		Message: "Took longer than expected. Want to try again?",
	},
	CodeUnknown: {
		Code: CodeUnknown, StatusCode: http.StatusInternalServerError, Retryable: true,
		Message: "Oops! Something didn't go as planned. Let's try that again!",
	},
}

// Classify maps err to a friendly AppError. Typed signals (deadlines, net
// errors, upstream status codes) are checked before message heuristics.
func Classify(err error) AppError {
	if err == nil {
		return catalogue[CodeUnknown]
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return catalogue[CodeTimeout]
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		if code := codeFromStatus(sc.HTTPStatus()); code != "" {
			return catalogue[code]
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return catalogue[CodeTimeout]
		}
		return catalogue[CodeNetwork]
	}

	return catalogue[codeFromMessage(strings.ToLower(err.Error()))]
}

// HTTPError converts the classification into a response error.
func (e AppError) HTTPError() *HTTPError {
	return NewHTTPErrorWithCode(e.StatusCode, e.Code, e.Message)
}

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	return Classify(err).Retryable
}

func codeFromStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CodeAuth
	case status == http.StatusTooManyRequests:
		return CodeRateLimit
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return CodeTimeout
	case status >= 500:
		return CodeServer
	default:
		return ""
	}
}

func codeFromMessage(msg string) string {
	switch {
	case containsAny(msg, "fetch", "network", "connection refused", "no such host"):
		return CodeNetwork
	case containsAny(msg, "api key", "authentication", "401"):
		return CodeAuth
	case containsAny(msg, "429", "rate limit"):
		return CodeRateLimit
	case containsAny(msg, "not found", "404"):
		return CodeNotFound
	case containsAny(msg, "500", "internal server"):
		return CodeServer
	case containsAny(msg, "timeout", "timed out"):
		return CodeTimeout
	default:
		return CodeUnknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
