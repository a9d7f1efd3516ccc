package middleware

import (
	"strategy-shop/config"
	"strategy-shop/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rl.RequestsPerMin, rl.Burst),
	}
}
