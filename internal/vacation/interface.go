package vacation

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetVacationOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Vacation, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Vacation, error)
	Decide(ctx context.Context, sc model.Scope, ip DecideInput) (model.Vacation, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
