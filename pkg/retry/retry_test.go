package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDelay(t *testing.T) {
	base := 100 * time.Millisecond
	tests := []struct {
		name    string
		opts    Options
		attempt int
		want    time.Duration
	}{
		{"none", Options{Delay: base, Backoff: BackoffNone}, 3, base},
		{"linear", Options{Delay: base, Backoff: BackoffLinear}, 3, 3 * base},
		{"exponential first", Options{Delay: base, Backoff: BackoffExponential}, 1, base},
		{"exponential third", Options{Delay: base, Backoff: BackoffExponential}, 3, 4 * base},
		{"capped", Options{Delay: base, Backoff: BackoffExponential, MaxDelay: 250 * time.Millisecond}, 4, 250 * time.Millisecond},
		{"default backoff", Options{Delay: base}, 2, 2 * base},
		{"exponential large attempt uses default cap", Options{Delay: time.Second}, 100, DefaultMaxDelay},
		{"linear large attempt uses default cap", Options{Delay: time.Second, Backoff: BackoffLinear}, 1 << 40, DefaultMaxDelay},
		{"delay above default cap", Options{Delay: time.Minute, Backoff: BackoffNone}, 5, time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Delay(tc.opts, tc.attempt); got != tc.want {
				t.Errorf("Delay = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	var retried []int

	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}
		return nil
	}, Options{
		MaxAttempts: 3,
		Delay:       time.Millisecond,
		OnRetry:     func(attempt int, err error) { retried = append(retried, attempt) },
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(retried) != 2 || retried[0] != 1 || retried[1] != 2 {
		t.Errorf("OnRetry attempts = %v", retried)
	}
}

func TestDo_ReturnsLastError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("attempt failed")
	}, Options{MaxAttempts: 2, Delay: time.Millisecond, Backoff: BackoffNone})

	if err == nil || err.Error() != "attempt failed" {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestDo_ShouldRetryStopsEarly(t *testing.T) {
	permanent := errors.New("bad request")
	calls := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	}, Options{
		MaxAttempts: 5,
		Delay:       time.Millisecond,
		ShouldRetry: func(err error) bool { return !errors.Is(err, permanent) },
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := Do(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	}, Options{MaxAttempts: 3, Delay: time.Hour})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestParseBackoff(t *testing.T) {
	if ParseBackoff("linear") != BackoffLinear {
		t.Error("linear not parsed")
	}
	if ParseBackoff("none") != BackoffNone {
		t.Error("none not parsed")
	}
	if ParseBackoff("") != BackoffExponential {
		t.Error("empty should default to exponential")
	}
}
