package usecase

import (
	"tracker-api/internal/note"
	"tracker-api/internal/note/repository"
	pkgLog "tracker-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) note.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
