package user

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

const MinPasswordLen = 8

// CreateInput creates an account. An empty Role means the base tier.
type CreateInput struct {
	Username string
	Password string
	FullName string
	Role     string
}

type UpdateProfileInput struct {
	FullName  string
	AvatarURL string
}

// UpdateInput is an administrative update. Nil fields are left unchanged.
type UpdateInput struct {
	ID        string
	FullName  *string
	AvatarURL *string
	Role      *string
	IsActive  *bool
}

type UserOutput struct {
	User model.User
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

type GetOneInput struct {
	Username string
	ID       string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type Filter struct {
	IDs      []string
	Role     string
	Search   string
	IsActive *bool
}
