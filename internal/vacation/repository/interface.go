package repository

import (
	"context"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Vacation, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Vacation, error)
	Overlapping(ctx context.Context, sc model.Scope, opts OverlapOptions) ([]model.Vacation, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Vacation, error)
	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.Vacation, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
