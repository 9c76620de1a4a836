package middleware

import (
	"sync"
	"time"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(c *gin.Context) string

// ByClientIP charges each client address separately.
func ByClientIP(c *gin.Context) string {
	return c.ClientIP()
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key. Buckets untouched for
// longer than idle are dropped on the next lookup.
type KeyedLimiter struct {
	mu      sync.Mutex
	buckets map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

func NewKeyedLimiter(limit rate.Limit, burst int, idle time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		buckets: make(map[string]*limiterEntry),
		limit:   limit,
		burst:   burst,
		idle:    idle,
		now:     time.Now,
	}
}

func (k *KeyedLimiter) Get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if k.idle > 0 {
		for id, e := range k.buckets {
			if now.Sub(e.lastSeen) > k.idle {
				delete(k.buckets, id)
			}
		}
	}

	e, ok := k.buckets[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.buckets[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len is the number of live buckets.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// RateLimit rejects requests over budget with 429 in the usual envelope.
func RateLimit(limiter *KeyedLimiter, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Get(key(c)).Allow() {
			e := apperror.ErrTooManyRequests
			c.Header("Retry-After", "1")
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RateLimitByIP(limit rate.Limit, burst int) gin.HandlerFunc {
	return RateLimit(NewKeyedLimiter(limit, burst, 10*time.Minute), ByClientIP)
}
