package middleware

import (
	"intelligent-task-management/config"
	"intelligent-task-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	requestsPerMin := cfg.RequestsPerMin
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
