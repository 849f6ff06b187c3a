package redis

import (
	"tracker-api/internal/auth/repository"
	pkgLog "tracker-api/pkg/log"
	pkgRedis "tracker-api/pkg/redis"
)

const revokedKeyPrefix = "auth:revoked:"

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) repository.Repository {
	return &implRepository{
		l:     l,
		redis: redis,
	}
}

func revokedKey(jti string) string {
	return revokedKeyPrefix + jti
}
