package encrypter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testKey = "0123456789abcdef"

func newTest(t *testing.T) *implEncrypter {
	t.Helper()
	e, err := New(testKey)
	require.NoError(t, err)
	impl := e.(*implEncrypter)
	impl.cost = bcrypt.MinCost
	return impl
}

func TestNew_KeyLength(t *testing.T) {
	_, err := New("short")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestEncryptDecrypt(t *testing.T) {
	e := newTest(t)
	c, err := e.Encrypt("hello")
	require.NoError(t, err)

	p, err := e.Decrypt(c)
	require.NoError(t, err)
	assert.Equal(t, "hello", p)

	_, err = e.Decrypt("AAAA")
	assert.Error(t, err)
}

func TestTicket(t *testing.T) {
	e := newTest(t)
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	tk, err := e.SealTicket("user-1", time.Minute)
	require.NoError(t, err)

	sub, err := e.OpenTicket(tk)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	now = now.Add(2 * time.Minute)
	_, err = e.OpenTicket(tk)
	assert.ErrorIs(t, err, ErrTicketExpired)
}

func TestPassword(t *testing.T) {
	e := newTest(t)
	h, err := e.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, e.CheckPassword("s3cret", h))
	assert.False(t, e.CheckPassword("nope", h))
}
