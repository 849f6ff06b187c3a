package auth

import (
	"sync"
	"time"

	"tracker-api/pkg/log"
)

// RateLimitError is returned when a caller exceeds a stream connection limit.
type RateLimitError struct {
	UserID  string
	Limit   string
	Current int
	Max     int
}

// RateLimitConfig bounds live stream connections.
type RateLimitConfig struct {
	MaxConnectionsPerUser          int
	MaxConnectionsPerUserPerDevice int
	ConnectionRateLimit            int
	RateLimitWindow                time.Duration
}

// ConnectionTracker counts open connections per user and per device.
type ConnectionTracker struct {
	userConnections       map[string]int
	userDeviceConnections map[string]map[string]int
	connectionTimestamps  map[string][]time.Time
	mu                    sync.Mutex
	config                RateLimitConfig
	now                   func() time.Time
}

type ConnectionTrackerStats struct {
	TotalUsers       int `json:"total_users"`
	TotalConnections int `json:"total_connections"`
}

// SecurityLogger logs security-relevant events at warn level.
type SecurityLogger struct {
	logger log.Logger
}
