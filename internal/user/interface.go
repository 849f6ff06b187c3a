package user

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (UserOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetUserOutput, error)
	GetOne(ctx context.Context, sc model.Scope, ip GetOneInput) (model.User, error)
	UpdateProfile(ctx context.Context, sc model.Scope, ip UpdateProfileInput) (UserOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (UserOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (UserOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
