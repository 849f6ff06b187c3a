package usecase

import (
	"time"

	"tracker-api/internal/reading"
	"tracker-api/internal/reading/repository"
	"tracker-api/pkg/encrypter"
	pkgLog "tracker-api/pkg/log"
)

// exportLimit caps a single CSV export.
const exportLimit = 100000

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	broker repository.Broker
	enc    encrypter.Encrypter
	cfg    reading.Config
	clock  func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, broker repository.Broker, enc encrypter.Encrypter, cfg reading.Config) reading.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		broker: broker,
		enc:    enc,
		cfg:    cfg,
		clock:  time.Now,
	}
}
