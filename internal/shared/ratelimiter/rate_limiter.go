// Package ratelimiter limits how often an operation may run per caller.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter decides whether an operation identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// RateLimiter is a fixed-window limiter: each key gets `limit` calls per
// `interval`, then further calls are rejected until the window resets.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

type window struct {
	count   int
	startAt time.Time
}

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
	}
}

// Allow reports whether the caller identified by key is within its budget.
// The key recovers once the current window ends.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.startAt) >= rl.interval {
		rl.windows[key] = &window{count: 1, startAt: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// sweep drops windows that have already ended, at most once per interval, so
// the per-key map does not grow for the lifetime of the process. Caller holds
// the lock.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for key, w := range rl.windows {
		if now.Sub(w.startAt) >= rl.interval {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}
