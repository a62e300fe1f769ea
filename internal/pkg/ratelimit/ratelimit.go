package ratelimit

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window limiter keyed by caller
type RateLimiter struct {
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	mu       sync.Mutex
	now      func() time.Time
}

// New creates a new rate limiter allowing limit requests per window
func New(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// Allow records a request for key and reports whether it fits in the window.
// It also returns how many requests remain and when the oldest one expires.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.prune(key, now)

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false, 0, resetTime(valid, now, rl.window)
	}

	valid = append(valid, now)
	rl.requests[key] = valid
	return true, rl.limit - len(valid), resetTime(valid, now, rl.window)
}

// prune drops timestamps that fell out of the window. Caller holds mu.
func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	requests := rl.requests[key]

	i := 0
	for i < len(requests) && !requests[i].After(cutoff) {
		i++
	}
	return requests[i:]
}

func resetTime(valid []time.Time, now time.Time, window time.Duration) time.Time {
	if len(valid) == 0 {
		return now
	}
	return valid[0].Add(window)
}

// Cleanup removes keys with no requests left in the window
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key := range rl.requests {
		valid := rl.prune(key, now)
		if len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed
func (rl *RateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}

// Len reports how many keys are tracked
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.requests)
}
