package auth

import "time"

const (
	DefaultMaxConnectionsPerUser          = 10
	DefaultMaxConnectionsPerUserPerDevice = 3
	DefaultConnectionRateLimit            = 20
	DefaultRateLimitWindow                = time.Minute
)

const (
	LimitPerUser   = "max_connections_per_user"
	LimitPerDevice = "max_connections_per_user_per_device"
	LimitRate      = "connection_rate_limit"
)
