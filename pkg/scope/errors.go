package scope

import "errors"

var (
	// ErrInvalidToken is returned when a token is malformed, expired or badly signed.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSecretTooShort = errors.New("scope: secret key too short")
)
