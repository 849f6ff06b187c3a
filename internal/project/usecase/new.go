package usecase

import (
	"tracker-api/internal/project"
	"tracker-api/internal/project/repository"
	pkgLog "tracker-api/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	files project.FileRemover
}

// New builds the project use case. files may be nil when attachments are disabled.
func New(l pkgLog.Logger, repo repository.Repository, files project.FileRemover) project.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		files: files,
	}
}
