package redis

import (
	"context"
	"encoding/json"
	"sync"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	pkgLog "tracker-api/pkg/log"
	pkgRedis "tracker-api/pkg/redis"
)

func (b *implBroker) Publish(ctx context.Context, r model.Reading) error {
	payload, err := json.Marshal(r)
	if err != nil {
		b.l.Errorf(ctx, "internal.reading.repository.redis.Publish.Marshal: %v", err)
		return err
	}
	if err := b.redis.Publish(ctx, channel(r.DeviceID), payload); err != nil {
		b.l.Errorf(ctx, "internal.reading.repository.redis.Publish: %v", err)
		return err
	}
	return nil
}

func (b *implBroker) Subscribe(ctx context.Context, deviceID string) (reading.Stream, error) {
	sub, err := b.redis.Subscribe(ctx, channel(deviceID))
	if err != nil {
		b.l.Errorf(ctx, "internal.reading.repository.redis.Subscribe: %v", err)
		return nil, err
	}

	s := &stream{
		l:    b.l,
		sub:  sub,
		ch:   make(chan model.Reading, b.buffer),
		done: make(chan struct{}),
	}
	go s.run(ctx)
	return s, nil
}

type stream struct {
	l    pkgLog.Logger
	sub  pkgRedis.Subscription
	ch   chan model.Reading
	done chan struct{}
	once sync.Once
}

// run decodes pub/sub messages. A full buffer drops the reading rather than
// stalling the subscription.
func (s *stream) run(ctx context.Context) {
	defer close(s.ch)
	for {
		select {
		case msg, ok := <-s.sub.Channel():
			if !ok {
				return
			}
			var r model.Reading
			if err := json.Unmarshal([]byte(msg.Payload), &r); err != nil {
				s.l.Warnf(ctx, "internal.reading.repository.redis.stream.Unmarshal: %v", err)
				continue
			}
			select {
			case s.ch <- r:
			default:
				s.l.Warnf(ctx, "internal.reading.repository.redis.stream: buffer full, dropped reading %s", r.ID)
			}
		case <-s.done:
			return
		}
	}
}

func (s *stream) Readings() <-chan model.Reading {
	return s.ch
}

func (s *stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.sub.Close()
}
