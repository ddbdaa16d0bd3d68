package middleware

import (
	"reminder-extractor/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

type Config struct {
	// RateLimitPerMin is the per-client request budget. Zero disables limiting.
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
