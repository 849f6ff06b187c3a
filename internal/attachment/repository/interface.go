package repository

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, projectID string) ([]model.Attachment, error)
	Detail(ctx context.Context, projectID, id string) (model.Attachment, error)
	Create(ctx context.Context, a model.Attachment) (model.Attachment, error)
	Delete(ctx context.Context, id string) error
	// DeleteByProject removes the rows of a project and returns them.
	DeleteByProject(ctx context.Context, projectID string) ([]model.Attachment, error)
}
