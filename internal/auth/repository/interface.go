package repository

import (
	"context"
	"time"
)

//go:generate mockery --name Repository
type Repository interface {
	// Revoke denies jti for ttl. A non-positive ttl is a no-op.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
