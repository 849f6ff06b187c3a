package scope

import (
	"context"
	"strings"
	"testing"
	"time"

	"tracker-api/pkg/permission"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, ttl time.Duration) Manager {
	t.Helper()
	m, err := New(testSecret, ttl)
	require.NoError(t, err)
	return m
}

func TestNew_ShortSecret(t *testing.T) {
	_, err := New("short", 0)
	assert.ErrorIs(t, err, ErrSecretTooShort)
}

func TestCreateAndVerify(t *testing.T) {
	m := newManager(t, time.Hour)

	token, err := m.CreateToken(Payload{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Username:         "ana",
		Name:             "Ana Souza",
		Role:             "Editor",
	})
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID())
	assert.Equal(t, "ana", got.Username)
	assert.NotEmpty(t, got.ID)

	sc := NewScope(got)
	assert.Equal(t, permission.RoleEditor, sc.Role)
	assert.Equal(t, "Editor", sc.RawRole)
	assert.Equal(t, got.ID, sc.JTI)
}

func TestVerify_Invalid(t *testing.T) {
	m := newManager(t, time.Hour)
	other, err := New(strings.Repeat("z", 32), time.Hour)
	require.NoError(t, err)

	foreign, err := other.CreateToken(Payload{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}})
	require.NoError(t, err)

	expired := &implManager{secretKey: []byte(testSecret), ttl: -time.Minute}
	old, err := expired.CreateToken(Payload{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong key", token: foreign},
		{name: "expired", token: old},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetScopeFromContext(ctx)
	assert.False(t, ok)

	sc := NewScope(Payload{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", ID: "j"}, Role: "supervisor"})
	ctx = SetScopeToContext(ctx, sc)

	got, ok := GetScopeFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)

	p, ok := permission.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, permission.RoleSupervisor, p.Role)

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}
