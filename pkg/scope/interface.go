package scope

import (
	"fmt"
	"time"
)

// Manager issues and verifies access tokens.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
	TTL() time.Duration
}

// New creates a Manager signing with secretKey. ttl <= 0 uses TokenExpirationDuration.
func New(secretKey string, ttl time.Duration) (Manager, error) {
	if len(secretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("%w: need %d characters, got %d", ErrSecretTooShort, MinSecretKeyLen, len(secretKey))
	}
	if ttl <= 0 {
		ttl = TokenExpirationDuration
	}
	return &implManager{secretKey: []byte(secretKey), ttl: ttl}, nil
}
