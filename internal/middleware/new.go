package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"tasklens/config"
	"tasklens/pkg/log"
)

const (
	// maxTrackedClients bounds the limiter cache; idle clients age out.
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(cfg.PerMinute) / 60.0),
		burst:    burst,
	}
}
