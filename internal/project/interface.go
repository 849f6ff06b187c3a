package project

import (
	"context"
	"io"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetProjectOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Project, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Project, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// Export writes every project visible to sc as CSV.
	Export(ctx context.Context, sc model.Scope, ip ExportInput, w io.Writer) error
}

// FileRemover drops the stored files of a deleted project.
type FileRemover interface {
	DeleteByProject(ctx context.Context, sc model.Scope, projectID string) error
}
