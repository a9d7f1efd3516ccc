package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgErrors "strategy-shop/pkg/errors"
	"strategy-shop/pkg/log"
	"strategy-shop/pkg/metrics"
	"strategy-shop/pkg/retry"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	RetryBackoff    retry.Backoff
	MaxRetryDelay   time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with the configured backoff.
// Errors that will not improve on retry (auth, not found) stop early.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var resp *Response
	err := retry.Do(ctx, func(ctx context.Context) error {
		r, err := provider.GenerateContent(ctx, req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}, retry.Options{
		MaxAttempts: m.config.RetryAttempts,
		Delay:       m.config.RetryDelay,
		Backoff:     m.config.RetryBackoff,
		MaxDelay:    m.config.MaxRetryDelay,
		ShouldRetry: isRetryable,
		OnRetry: func(attempt int, err error) {
			m.logger.Debugf(ctx, "llmprovider: %s attempt %d failed: %v", provider.Name(), attempt, err)
		},
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return pkgErrors.IsRetryable(err)
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	metrics.LLMRequests.WithLabelValues(provider.Name(), metrics.OutcomeSuccess).Inc()
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
		metrics.LLMTokens.WithLabelValues(provider.Name(), "input").Add(float64(in))
		metrics.LLMTokens.WithLabelValues(provider.Name(), "output").Add(float64(out))
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	metrics.LLMRequests.WithLabelValues(provider.Name(), metrics.OutcomeFailure).Inc()
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
