package middleware

import (
	"time"

	"multilingual-chatbot/pkg/log"
)

// Metrics receives per-request observations. *metrics.Metrics implements it.
type Metrics interface {
	ObserveHTTP(route, method string, status int, d time.Duration)
	IncRateLimited()
}

// Config holds the middleware settings.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	MaxTrackedPeers  int
}

type Middleware struct {
	l       log.Logger
	metrics Metrics
	limiter *rateLimiter
}

func New(l log.Logger, m Metrics, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedPeers)
	}
	return mw
}
