package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the token claim set.
type Payload struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserID returns the subject claim.
func (p Payload) UserID() string {
	return p.Subject
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
}

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
