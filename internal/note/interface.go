package note

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetNoteOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Note, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Note, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
