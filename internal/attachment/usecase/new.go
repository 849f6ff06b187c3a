package usecase

import (
	"tracker-api/internal/attachment"
	"tracker-api/internal/attachment/repository"
	projectRepo "tracker-api/internal/project/repository"
	pkgLog "tracker-api/pkg/log"
	"tracker-api/pkg/minio"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	projects projectRepo.Repository
	storage  minio.MinIO
	cfg      attachment.Config
}

func New(l pkgLog.Logger, repo repository.Repository, projects projectRepo.Repository, storage minio.MinIO, cfg attachment.Config) attachment.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		projects: projects,
		storage:  storage,
		cfg:      cfg,
	}
}
