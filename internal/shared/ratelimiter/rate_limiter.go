// Package ratelimiter counts operations per key in fixed time windows.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter decides whether one more operation for key fits in the current window.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

type window struct {
	count int
	start time.Time
}

// RateLimiter allows limit operations per key every interval.
type RateLimiter struct {
	limit    int
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter creates a RateLimiter. A non-positive limit allows everything.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow records one operation for key. When the window is full it reports
// false and how long until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		if len(rl.windows) > 10000 {
			rl.sweep(now)
		}
		rl.windows[key] = &window{count: 1, start: now}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	w.count++
	return true, 0
}

// sweep drops windows that have already closed. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
