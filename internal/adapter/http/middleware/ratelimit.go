package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/gp-senegal/smart-search/internal/adapter/http/response"
)

// RateLimitConfig controls the per-client token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client IP.
	RequestsPerSecond float64

	// Burst is the number of requests a client may send at once.
	Burst int
}

// ipRateLimiter hands out one token bucket per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(cfg RateLimitConfig) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
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

// RateLimit returns middleware that throttles clients by IP. Searches fan
// out to the geocoder, so unthrottled clients could exhaust the upstream
// quota for everyone.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	limiters := newIPRateLimiter(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiters.limiter(c.RealIP()).Allow() {
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}
