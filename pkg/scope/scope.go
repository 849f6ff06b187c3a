package scope

import (
	"fmt"
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/permission"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (m *implManager) TTL() time.Duration {
	return m.ttl
}

// Verify checks signature and expiry and returns the claims.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.secretKey, nil
	}
	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	payload, ok := jwtToken.Claims.(*Payload)
	if !ok || !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}
	if payload.Subject == "" || payload.ID == "" {
		return Payload{}, fmt.Errorf("%w: missing sub or jti", ErrInvalidToken)
	}
	return *payload, nil
}

// CreateToken signs payload with HS256. Expiry and jti are always set here.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.NotBefore = jwt.NewNumericDate(now)
	payload.ID = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// NewScope builds model.Scope from verified claims.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.Subject,
		Username: payload.Username,
		Name:     payload.Name,
		Role:     permission.ParseRole(payload.Role),
		RawRole:  payload.Role,
		JTI:      payload.ID,
	}
}

// RestoreScope recomputes the parsed role of a scope decoded from JSON.
func RestoreScope(sc model.Scope) model.Scope {
	sc.Role = permission.ParseRole(sc.RawRole)
	return sc
}
