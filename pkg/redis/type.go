package redis

import (
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Message is one pub/sub delivery.
type Message struct {
	Channel string
	Payload string
}

type redisImpl struct {
	client *goredis.Client
}

type subscriptionImpl struct {
	ps   *goredis.PubSub
	ch   chan Message
	done chan struct{}
	once sync.Once
}
