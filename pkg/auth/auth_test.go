package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionTracker_Limits(t *testing.T) {
	ct := NewConnectionTracker(RateLimitConfig{
		MaxConnectionsPerUser:          3,
		MaxConnectionsPerUserPerDevice: 2,
		ConnectionRateLimit:            10,
		RateLimitWindow:                time.Minute,
	})

	require.NoError(t, ct.Acquire("u1", "dev-a"))
	require.NoError(t, ct.Acquire("u1", "dev-a"))

	err := ct.Acquire("u1", "dev-a")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
	assert.Contains(t, err.Error(), LimitPerDevice)

	require.NoError(t, ct.Acquire("u1", "dev-b"))
	err = ct.Acquire("u1", "dev-c")
	assert.Contains(t, err.Error(), LimitPerUser)

	ct.Release("u1", "dev-a")
	assert.NoError(t, ct.Acquire("u1", "dev-c"))
	assert.Equal(t, ConnectionTrackerStats{TotalUsers: 1, TotalConnections: 3}, ct.Stats())
}

func TestConnectionTracker_RateWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ct := NewConnectionTracker(RateLimitConfig{
		MaxConnectionsPerUser:          100,
		MaxConnectionsPerUserPerDevice: 100,
		ConnectionRateLimit:            2,
		RateLimitWindow:                time.Minute,
	})
	ct.now = func() time.Time { return now }

	require.NoError(t, ct.Acquire("u1", "d"))
	require.NoError(t, ct.Acquire("u1", "d"))
	err := ct.Acquire("u1", "d")
	assert.Contains(t, err.Error(), LimitRate)

	now = now.Add(2 * time.Minute)
	assert.NoError(t, ct.Acquire("u1", "d"))
}

func TestReleaseUnknown(t *testing.T) {
	ct := NewConnectionTracker(DefaultRateLimitConfig())
	ct.Release("nobody", "nothing")
	assert.Equal(t, 0, ct.Stats().TotalConnections)
}
