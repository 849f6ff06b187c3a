package usecase

import (
	"tracker-api/internal/user"
	"tracker-api/internal/user/repository"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/discord"
	"tracker-api/pkg/encrypter"
	pkgLog "tracker-api/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	enc      encrypter.Encrypter
	security *auth.SecurityLogger
	// d receives the activity log; nil disables it.
	d discord.IDiscord
}

func New(l pkgLog.Logger, repo repository.Repository, enc encrypter.Encrypter, d discord.IDiscord) user.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		enc:      enc,
		security: auth.NewSecurityLogger(l),
		d:        d,
	}
}
