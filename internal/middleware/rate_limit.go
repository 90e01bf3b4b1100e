package middleware

import (
	"errors"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasklens/pkg/response"
)

var errRateLimited = errors.New("too many requests, slow down")

// RateLimit throttles requests per client IP with a token bucket. A new
// client gets a fresh limiter; idle limiters age out of the cache.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rate <= 0 {
			c.Next()
			return
		}

		key := clientIP(c)
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: client %s throttled", key)
			response.TooManyRequests(c, errRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

// clientIP resolves the caller behind proxies.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
