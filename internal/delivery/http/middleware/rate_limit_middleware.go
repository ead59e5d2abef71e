package middleware

import (
	"sync"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	rateLimitIdleTTL       = 5 * time.Minute
	rateLimitSweepInterval = time.Minute
)

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware is a token bucket per client IP. Idle buckets are
// dropped on the next request after the sweep interval.
type RateLimitMiddleware struct {
	enabled bool
	limit   rate.Limit
	burst   int
	now     func() time.Time

	mu        sync.Mutex
	buckets   map[string]*ipBucket
	lastSweep time.Time
}

// NewRateLimitMiddleware reads http.rateLimit from config.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.HTTP.RateLimit
	burst := rl.Burst
	if burst <= 0 {
		burst = 1
	}

	return &RateLimitMiddleware{
		enabled: rl.Enabled && rl.RPS > 0,
		limit:   rate.Limit(rl.RPS),
		burst:   burst,
		now:     time.Now,
		buckets: make(map[string]*ipBucket),
	}
}

// Handle answers 429 once the caller's bucket is empty.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		ip := c.RealIP()
		if ip == "" {
			ip = "unknown"
		}
		if !m.allow(ip) {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > rateLimitSweepInterval {
		for key, b := range m.buckets {
			if now.Sub(b.lastSeen) > rateLimitIdleTTL {
				delete(m.buckets, key)
			}
		}
		m.lastSweep = now
	}

	b, ok := m.buckets[ip]
	if !ok {
		b = &ipBucket{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.buckets[ip] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}
