package repository

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type Filter struct {
	// UserID restricts results to one author; empty means every author.
	UserID string
	Search string
	Pinned *bool
}

type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type CreateOptions struct {
	Note model.Note
}

type UpdateOptions struct {
	Note model.Note
}
