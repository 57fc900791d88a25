package middleware

import (
	"voice-fact-skill/pkg/log"
)

// SecurityConfig controls the webhook guards. Empty values disable the
// matching check.
type SecurityConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg SecurityConfig) Middleware {
	mw := Middleware{
		l:      l,
		config: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
