package repository

import (
	"context"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Note, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Note, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Note, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
