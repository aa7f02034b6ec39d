package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter applies a fixed-window per-IP limit to a single endpoint.
// Windows live in memory; stale entries are pruned on each reset.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*rateWindow
	limit    int
	interval time.Duration
	endpoint string
	metrics  *metrics.RaffleMetrics
}

func NewRateLimiter(limit int, interval time.Duration, endpoint string, m *metrics.RaffleMetrics) *RateLimiter {
	return &RateLimiter{
		windows:  make(map[string]*rateWindow),
		limit:    limit,
		interval: interval,
		endpoint: endpoint,
		metrics:  m,
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.prune(now)
		rl.windows[ip] = &rateWindow{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

func (rl *RateLimiter) prune(now time.Time) {
	for ip, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, ip)
		}
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(rl.endpoint)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
