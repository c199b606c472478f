package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"cvgen-utils/internal/config"
	"cvgen-utils/pkg/models"
)

// ipRateLimiter hands out one token bucket per client IP
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit throttles requests per client IP using a token bucket. Health
// endpoints are exempt.
func RateLimit(cfg *config.Config) echo.MiddlewareFunc {
	if !cfg.RateLimit.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiters := newIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublicPath(c.Path()) {
				return next(c)
			}

			if !limiters.limiter(c.RealIP()).Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
