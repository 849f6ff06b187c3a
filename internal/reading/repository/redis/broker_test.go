package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/log"
	pkgRedis "tracker-api/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedis struct {
	pkgRedis.IRedis
	mock.Mock
}

func (m *mockRedis) Publish(ctx context.Context, channel string, payload interface{}) error {
	return m.Called(ctx, channel, payload).Error(0)
}

func (m *mockRedis) Subscribe(ctx context.Context, channels ...string) (pkgRedis.Subscription, error) {
	args := m.Called(ctx, channels)
	if s, ok := args.Get(0).(pkgRedis.Subscription); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeSubscription struct {
	ch     chan pkgRedis.Message
	closed bool
}

func (f *fakeSubscription) Channel() <-chan pkgRedis.Message { return f.ch }

func (f *fakeSubscription) Close() error {
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	return nil
}

func TestPublish_Channel(t *testing.T) {
	ctx := context.Background()
	rd := &mockRedis{}
	b := New(log.NewNop(), rd, 4)

	r := model.Reading{ID: "r1", DeviceID: "esp-01", DeviceType: model.DeviceTypeESP32, TemperatureC: 21.5}
	rd.On("Publish", ctx, "readings:esp-01", mock.MatchedBy(func(p interface{}) bool {
		var got model.Reading
		return json.Unmarshal(p.([]byte), &got) == nil && got.ID == "r1"
	})).Return(nil)

	require.NoError(t, b.Publish(ctx, r))
	rd.AssertExpectations(t)
}

func TestSubscribe_Decodes(t *testing.T) {
	ctx := context.Background()
	rd := &mockRedis{}
	sub := &fakeSubscription{ch: make(chan pkgRedis.Message, 2)}
	rd.On("Subscribe", ctx, []string{"readings:esp-01"}).Return(sub, nil)

	s, err := New(log.NewNop(), rd, 4).Subscribe(ctx, "esp-01")
	require.NoError(t, err)

	sub.ch <- pkgRedis.Message{Channel: "readings:esp-01", Payload: "not json"}
	sub.ch <- pkgRedis.Message{Channel: "readings:esp-01", Payload: `{"id":"r2","device_id":"esp-01","temperature_c":19.25}`}

	select {
	case r := <-s.Readings():
		assert.Equal(t, "r2", r.ID)
		assert.Equal(t, 19.25, r.TemperatureC)
	case <-time.After(time.Second):
		t.Fatal("no reading delivered")
	}

	require.NoError(t, s.Close())
	assert.Eventually(t, func() bool {
		_, ok := <-s.Readings()
		return !ok
	}, time.Second, 10*time.Millisecond)
}
