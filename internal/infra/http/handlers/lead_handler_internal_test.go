package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWindow(t *testing.T) {
	current := time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))

	current = current.Add(2 * time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterDropsStaleVisitors(t *testing.T) {
	current := time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Minute)
	rl.now = func() time.Time { return current }

	rl.Allow("10.0.0.1")
	current = current.Add(3 * time.Minute)
	rl.Allow("10.0.0.2")

	assert.NotContains(t, rl.visitors, "10.0.0.1")
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/leads", nil)
	r.RemoteAddr = "192.168.0.10:51234"
	assert.Equal(t, "192.168.0.10", getClientIP(r))

	r.Header.Set("X-Real-IP", "172.16.0.5")
	assert.Equal(t, "172.16.0.5", getClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(r))
}
