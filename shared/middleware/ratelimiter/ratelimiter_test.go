package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	rl := NewUserRateLimiter(60, 2, time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("192.0.2.1"))
	assert.True(t, rl.Allow("192.0.2.1"))
	assert.False(t, rl.Allow("192.0.2.1"), "burst exhausted")
	assert.True(t, rl.Allow("192.0.2.2"), "identities are independent")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("192.0.2.1"), "one token refilled after a second")
}

func TestCleanup(t *testing.T) {
	rl := NewUserRateLimiter(60, 1, time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(30 * time.Second)
	rl.Allow("fresh")
	now = now.Add(45 * time.Second)

	rl.Cleanup()
	assert.Equal(t, 1, rl.size())
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, NewUserRateLimiter(30, 1, time.Minute).RetryAfter())
	assert.Equal(t, time.Duration(0), NewUserRateLimiter(0, 1, time.Minute).RetryAfter())
}
