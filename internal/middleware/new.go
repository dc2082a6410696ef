package middleware

import (
	"todo-tracker/config"
	"todo-tracker/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware set. A zero RequestsPerMin disables rate limiting.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	var limiter *rateLimiter
	if cfg.RequestsPerMin > 0 {
		limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
