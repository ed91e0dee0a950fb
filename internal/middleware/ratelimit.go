package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client IP. A bucket holds
// maxRequests tokens and refills at maxRequests per window. A bucket idle
// for a whole window is full again, so it is dropped and recreated on the
// client's next request.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	maxReqs   int
	window    time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimit creates a rate limiter. A non-positive maxRequests or window
// disables limiting.
func NewRateLimit(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		maxReqs:  maxRequests,
		window:   window,
	}
}

func (r *RateLimiter) enabled() bool {
	return r.maxReqs > 0 && r.window > 0
}

func (r *RateLimiter) limiter(clientIP string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) >= r.window {
		r.evictIdle(now)
		r.lastSweep = now
	}

	cl, ok := r.limiters[clientIP]
	if !ok {
		every := rate.Every(r.window / time.Duration(r.maxReqs))
		cl = &clientLimiter{limiter: rate.NewLimiter(every, r.maxReqs)}
		r.limiters[clientIP] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// evictIdle drops buckets not used for a full window. Caller holds mu.
func (r *RateLimiter) evictIdle(now time.Time) {
	for ip, cl := range r.limiters {
		if now.Sub(cl.lastSeen) >= r.window {
			delete(r.limiters, ip)
		}
	}
}

func (r *RateLimiter) clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

// RateLimitMiddleware rejects requests over the per-client budget with 429
func RateLimitMiddleware(rateLimiter *RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rateLimiter.enabled() {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		now := time.Now()
		l := rateLimiter.limiter(clientIP, now)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rateLimiter.maxReqs))

		res := l.ReserveN(now, 1)
		if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
			// give the token back, this request is rejected
			res.CancelAt(now)

			logger.Warn("Rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.Int("max_requests", rateLimiter.maxReqs),
				zap.Duration("window", rateLimiter.window),
			)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			c.AbortWithStatusJSON(429, gin.H{
				"error": "Rate limit exceeded",
				"code":  "RATE_LIMIT_EXCEEDED",
			})
			return
		}

		remaining := int(math.Floor(l.TokensAt(now)))
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}
