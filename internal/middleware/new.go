package middleware

import (
	"todo-summary-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config tunes the middleware set.
type Config struct {
	// RateLimitPerMin bounds requests per client IP on guarded routes. Zero disables limiting.
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
