package auth

import (
	"context"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (model.User, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, sc model.Scope, ip LogoutInput) error
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
