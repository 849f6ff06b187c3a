package redis

import (
	"context"
	"time"
)

func (r *implRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := r.redis.Set(ctx, revokedKey(jti), "1", ttl); err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Revoke: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	ok, err := r.redis.Exists(ctx, revokedKey(jti))
	if err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.IsRevoked: %v", err)
		return false, err
	}
	return ok, nil
}
