package middleware

import (
	"context"

	"tracker-api/config"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/scope"
)

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	revocations  RevocationChecker
	encrypter    encrypter.Encrypter
	security     *auth.SecurityLogger
	cookieConfig config.CookieConfig
}

func New(l log.Logger, jwtManager scope.Manager, revocations RevocationChecker, enc encrypter.Encrypter, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		revocations:  revocations,
		encrypter:    enc,
		security:     auth.NewSecurityLogger(l),
		cookieConfig: cookieConfig,
	}
}
