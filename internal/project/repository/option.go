package repository

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type Filter struct {
	IDs []string
	// OwnerID restricts results to one owner; empty means every owner.
	OwnerID string
	Status  model.ProjectStatus
	Search  string
}

// Order is a resolved column and direction.
type Order struct {
	Column    string
	Direction paginator.Direction
}

type GetOptions struct {
	Filter        Filter
	Order         Order
	PaginateQuery paginator.PaginateQuery
}

type ListOptions struct {
	Filter Filter
	Order  Order
}

type CreateOptions struct {
	Project model.Project
}

type UpdateOptions struct {
	Project model.Project
}
