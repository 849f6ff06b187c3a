package redis

import (
	"context"
	"fmt"
	"sync"

	"tracker-api/config"
	pkgRedis "tracker-api/pkg/redis"
)

var (
	instance pkgRedis.IRedis
	mu       sync.RWMutex
)

// Connect returns the shared Redis client, creating it on first use.
func Connect(ctx context.Context, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	instance = client
	return instance, nil
}

// Disconnect closes the shared client so a later Connect starts fresh.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}

func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return instance.Ping(ctx)
}
