// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Chat completion calls per provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	LLMTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Tokens consumed per provider and direction",
		},
		[]string{"provider", "direction"},
	)

	AudioCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audio_cache_lookups_total",
			Help: "Speech audio cache lookups by result",
		},
		[]string{"result"},
	)

	Escalations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategist_escalations_total",
			Help: "Replies that asked for a professional or a clarity sprint",
		},
		[]string{"type"},
	)

	VideoSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_searches_total",
			Help: "Video searches by outcome",
		},
		[]string{"outcome"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	CacheHit  = "hit"
	CacheMiss = "miss"
)
