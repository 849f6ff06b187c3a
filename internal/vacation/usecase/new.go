package usecase

import (
	"time"

	"tracker-api/internal/vacation"
	"tracker-api/internal/vacation/repository"
	pkgLog "tracker-api/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository) vacation.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		clock: time.Now,
	}
}
