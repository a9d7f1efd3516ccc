package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
)

type statusErr int

func (s statusErr) Error() string   { return fmt.Sprintf("upstream status %d", int(s)) }
func (s statusErr) HTTPStatus() int { return int(s) }

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      string
		status    int
		retryable bool
	}{
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), CodeTimeout, http.StatusRequestTimeout, true},
		{"status 401", statusErr(401), CodeAuth, http.StatusUnauthorized, false},
		{"status 429", fmt.Errorf("wrapped: %w", statusErr(429)), CodeRateLimit, http.StatusTooManyRequests, true},
		{"status 404", statusErr(404), CodeNotFound, http.StatusNotFound, false},
		{"status 502", statusErr(502), CodeServer, http.StatusInternalServerError, true},
		{"net timeout", &net.OpError{Op: "dial", Err: timeoutErr{}}, CodeTimeout, http.StatusRequestTimeout, true},
		{"message network", errors.New("Failed to fetch"), CodeNetwork, http.StatusServiceUnavailable, true},
		{"message api key", errors.New("invalid API key"), CodeAuth, http.StatusUnauthorized, false},
		{"message rate", errors.New("Rate limit exceeded"), CodeRateLimit, http.StatusTooManyRequests, true},
		{"message timeout", errors.New("request timed out"), CodeTimeout, http.StatusRequestTimeout, true},
		{"unknown", errors.New("boom"), CodeUnknown, http.StatusInternalServerError, true},
		{"nil", nil, CodeUnknown, http.StatusInternalServerError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			if got.Code != tc.code {
				t.Errorf("Code = %s, want %s", got.Code, tc.code)
			}
			if got.StatusCode != tc.status {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tc.status)
			}
			if got.Retryable != tc.retryable {
				t.Errorf("Retryable = %v, want %v", got.Retryable, tc.retryable)
			}
			if got.Message == "" {
				t.Error("expected friendly message")
			}
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewHTTPError(http.StatusPaymentRequired, "upgrade"))

	he, ok := AsHTTPError(err)
	if !ok {
		t.Fatal("expected HTTPError in chain")
	}
	if he.StatusCode != http.StatusPaymentRequired || he.Code != "PAYMENT_REQUIRED" {
		t.Errorf("unexpected error: %+v", he)
	}
	if he.Error() != "upgrade" {
		t.Errorf("Error() = %q", he.Error())
	}

	custom := NewHTTPErrorWithCode(http.StatusPaymentRequired, "EMAIL_REQUIRED", "email please")
	if custom.Code != "EMAIL_REQUIRED" {
		t.Errorf("Code = %q", custom.Code)
	}
}

func TestAppErrorHTTPError(t *testing.T) {
	he := Classify(context.DeadlineExceeded).HTTPError()
	if he.StatusCode != http.StatusRequestTimeout || he.Code != CodeTimeout {
		t.Errorf("unexpected error: %+v", he)
	}
	if he.Message == "" {
		t.Error("friendly message missing")
	}
}
