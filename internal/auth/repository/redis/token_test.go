package redis

import (
	"context"
	"testing"
	"time"

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

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockRedis) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	rd := &mockRedis{}
	repo := New(log.NewNop(), rd)

	rd.On("Set", ctx, "auth:revoked:abc", "1", time.Minute).Return(nil)
	require.NoError(t, repo.Revoke(ctx, "abc", time.Minute))

	require.NoError(t, repo.Revoke(ctx, "expired", -time.Second))
	require.NoError(t, repo.Revoke(ctx, "", time.Minute))
	rd.AssertNumberOfCalls(t, "Set", 1)
}

func TestIsRevoked(t *testing.T) {
	ctx := context.Background()
	rd := &mockRedis{}
	repo := New(log.NewNop(), rd)

	rd.On("Exists", ctx, "auth:revoked:abc").Return(true, nil)
	rd.On("Exists", ctx, "auth:revoked:def").Return(false, nil)

	ok, err := repo.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsRevoked(ctx, "def")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
