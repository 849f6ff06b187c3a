package usecase

import (
	"time"

	"tracker-api/internal/auth"
	"tracker-api/internal/auth/repository"
	"tracker-api/internal/user"
	pkgAuth "tracker-api/pkg/auth"
	"tracker-api/pkg/encrypter"
	pkgLog "tracker-api/pkg/log"
	"tracker-api/pkg/scope"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userUC   user.UseCase
	jwt      scope.Manager
	enc      encrypter.Encrypter
	security *pkgAuth.SecurityLogger
	clock    func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, userUC user.UseCase, jwt scope.Manager, enc encrypter.Encrypter) auth.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		userUC:   userUC,
		jwt:      jwt,
		enc:      enc,
		security: pkgAuth.NewSecurityLogger(l),
		clock:    time.Now,
	}
}
