// Package retry runs an operation until it succeeds or attempts run out.
package retry

import (
	"context"
	"time"
)

// Backoff selects how the wait grows between attempts.
type Backoff string

const (
	BackoffNone        Backoff = "none"
	BackoffLinear      Backoff = "linear"
	BackoffExponential Backoff = "exponential"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = time.Second
	DefaultMaxDelay    = 30 * time.Second
)

// Options configures Do. Zero values fall back to the defaults above and
// exponential backoff.
type Options struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     Backoff
	// MaxDelay caps a single wait. Zero caps at DefaultMaxDelay, or at Delay
	// when Delay is larger.
	MaxDelay time.Duration
	// ShouldRetry decides whether err is worth another attempt. Nil retries
	// every error.
	ShouldRetry func(err error) bool
	// OnRetry runs before each wait with the failed attempt number (1-based).
	OnRetry func(attempt int, err error)
}

// ParseBackoff maps a config string to a Backoff, defaulting to exponential.
func ParseBackoff(s string) Backoff {
	switch Backoff(s) {
	case BackoffNone, BackoffLinear:
		return Backoff(s)
	default:
		return BackoffExponential
	}
}

// Do calls fn up to MaxAttempts times and returns the last error.
// It does not wait after the final attempt and stops early when ctx ends.
func Do(ctx context.Context, fn func(ctx context.Context) error, opts Options) error {
	opts = withDefaults(opts)

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == opts.MaxAttempts {
			break
		}
		if opts.ShouldRetry != nil && !opts.ShouldRetry(lastErr) {
			break
		}
		if opts.OnRetry != nil {
			opts.OnRetry(attempt, lastErr)
		}

		timer := time.NewTimer(Delay(opts, attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}

// Delay returns the wait after failed attempt n (1-based).
func Delay(opts Options, n int) time.Duration {
	opts = withDefaults(opts)

	var d time.Duration
	switch opts.Backoff {
	case BackoffNone:
		d = opts.Delay
	case BackoffLinear:
		if time.Duration(n) > opts.MaxDelay/opts.Delay {
			return opts.MaxDelay
		}
		d = opts.Delay * time.Duration(n)
	default:
		// Shifting past the cap would overflow into a negative duration.
		d = opts.Delay
		for i := 1; i < n && d < opts.MaxDelay; i++ {
			d <<= 1
		}
	}

	if d > opts.MaxDelay || d <= 0 {
		d = opts.MaxDelay
	}
	return d
}

func withDefaults(opts Options) Options {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Backoff == "" {
		opts.Backoff = BackoffExponential
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = max(DefaultMaxDelay, opts.Delay)
	}
	return opts
}
