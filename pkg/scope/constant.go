package scope

import "time"

const (
	// TokenExpirationDuration is the default token lifetime.
	TokenExpirationDuration = time.Hour * 24 * 7
	// MinSecretKeyLen is the shortest HMAC secret accepted.
	MinSecretKeyLen = 32
)
