package middleware

import (
	"net/http"
	"sync"
	"time"

	"newsletter-delivery/internal/handler/httperr"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorTTL          = 10 * time.Minute
	visitorSweepEvery   = 5000
	rateLimitRetryAfter = "1"
)

var errRateLimited = errs.New("rate limit exceeded")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per publishing owner, falling back to the client IP
// for requests that reach it unauthenticated. Buckets are process-local.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  uint64
	ttl      time.Duration
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(cfg.RPS),
		burst:    burst,
		visitors: make(map[string]*visitor),
		ttl:      visitorTTL,
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// sweep before lookup so a stale bucket for key is replaced, not refreshed
	rl.lookups++
	if rl.lookups >= visitorSweepEvery {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiterFor(rateLimitKey(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", rateLimitRetryAfter)
		httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", nil)
	}
}

func rateLimitKey(c *gin.Context) string {
	if ownerID, ok := GetUserID(c); ok {
		return "owner:" + ownerID.String()
	}
	return "ip:" + c.ClientIP()
}
