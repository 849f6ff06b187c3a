package auth

import (
	"time"

	"tracker-api/pkg/log"
)

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxConnectionsPerUser:          DefaultMaxConnectionsPerUser,
		MaxConnectionsPerUserPerDevice: DefaultMaxConnectionsPerUserPerDevice,
		ConnectionRateLimit:            DefaultConnectionRateLimit,
		RateLimitWindow:                DefaultRateLimitWindow,
	}
}

func NewConnectionTracker(config RateLimitConfig) *ConnectionTracker {
	return &ConnectionTracker{
		userConnections:       make(map[string]int),
		userDeviceConnections: make(map[string]map[string]int),
		connectionTimestamps:  make(map[string][]time.Time),
		config:                config,
		now:                   time.Now,
	}
}

func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger}
}
