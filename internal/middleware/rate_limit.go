package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"personal-assistant/pkg/response"
)

// RateLimit enforces a per-client-IP token bucket. With rps <= 0 it is a
// no-op.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	if m.rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !m.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters[ip] = limiter
	}
	return limiter
}
