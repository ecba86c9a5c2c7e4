package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter keeps one token bucket per identity (an IP address for the
// frontend) and forgets identities idle for longer than expirationTime.
type UserRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*entry
	rate           rate.Limit
	burst          int
	expirationTime time.Duration
	now            func() time.Time
}

// NewUserRateLimiter allows perMinute events per identity with the given burst.
func NewUserRateLimiter(perMinute float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*entry),
		rate:           rate.Limit(perMinute / 60),
		burst:          burst,
		expirationTime: expirationTime,
		now:            time.Now,
	}
}

// Allow reports whether identity may perform one more event now.
func (u *UserRateLimiter) Allow(identity string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	e, ok := u.limiters[identity]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(u.rate, u.burst)}
		u.limiters[identity] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// RetryAfter is how long an exhausted identity waits for its next token.
func (u *UserRateLimiter) RetryAfter() time.Duration {
	if u.rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(u.rate))
}

// Cleanup drops identities that have been idle past the expiration time.
func (u *UserRateLimiter) Cleanup() {
	u.mu.Lock()
	defer u.mu.Unlock()

	cutoff := u.now().Add(-u.expirationTime)
	for id, e := range u.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(u.limiters, id)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (u *UserRateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				u.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}

func (u *UserRateLimiter) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.limiters)
}
