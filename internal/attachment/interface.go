package attachment

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Upload(ctx context.Context, sc model.Scope, ip UploadInput) (model.Attachment, error)
	List(ctx context.Context, sc model.Scope, projectID string) ([]model.Attachment, error)
	Download(ctx context.Context, sc model.Scope, projectID, id string) (DownloadOutput, error)
	Delete(ctx context.Context, sc model.Scope, projectID, id string) error
	// DeleteByProject removes every file of a project, ignoring visibility.
	DeleteByProject(ctx context.Context, sc model.Scope, projectID string) error
}
