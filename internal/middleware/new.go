package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"personal-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l log.Logger

	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates the middleware set. rps <= 0 disables rate limiting.
func New(l log.Logger, rps float64, burst int) *Middleware {
	if burst <= 0 {
		burst = 1
	}
	return &Middleware{
		l:        l,
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}
