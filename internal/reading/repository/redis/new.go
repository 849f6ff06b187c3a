package redis

import (
	"tracker-api/internal/reading/repository"
	pkgLog "tracker-api/pkg/log"
	pkgRedis "tracker-api/pkg/redis"
)

const channelPrefix = "readings:"

type implBroker struct {
	l      pkgLog.Logger
	redis  pkgRedis.IRedis
	buffer int
}

var _ repository.Broker = &implBroker{}

// New returns a broker whose streams buffer up to buffer readings.
func New(l pkgLog.Logger, redis pkgRedis.IRedis, buffer int) repository.Broker {
	if buffer <= 0 {
		buffer = 1
	}
	return &implBroker{
		l:      l,
		redis:  redis,
		buffer: buffer,
	}
}

func channel(deviceID string) string {
	return channelPrefix + deviceID
}
