package repository

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type Filter struct {
	IDs      []string
	Role     string
	IsActive *bool
	// Search matches username or full_name, case-insensitively.
	Search string
}

type CreateOptions struct {
	User model.User
}

// UpdateOptions writes every mutable column of User.
type UpdateOptions struct {
	User model.User
}

type GetOneOptions struct {
	Username string
	ID       string
}

type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
