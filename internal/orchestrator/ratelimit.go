package orchestrator

import (
	"sync"
	"time"
)

type RateLimiter interface {
	Allow(key string) bool
}

// Simple token bucket per IP
type ipBucket struct {
	tokens     int
	lastRefill time.Time
}

// IPRateLimiter refills each bucket to capacity once per window.
type IPRateLimiter struct {
	mu             sync.Mutex
	buckets        map[string]*ipBucket
	capacity       int
	refillDuration time.Duration
	now            func() time.Time
}

func NewIPRateLimiter(capacity int, refill time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		buckets:        make(map[string]*ipBucket),
		capacity:       capacity,
		refillDuration: refill,
		now:            time.Now,
	}
}

func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	b, ok := rl.buckets[ip]
	if !ok {
		rl.buckets[ip] = &ipBucket{tokens: rl.capacity - 1, lastRefill: now}
		return rl.capacity > 0
	}
	if now.Sub(b.lastRefill) >= rl.refillDuration {
		b.tokens = rl.capacity
		b.lastRefill = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}
