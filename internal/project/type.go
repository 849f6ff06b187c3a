package project

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type CreateInput struct {
	Name        string
	Description string
	Status      model.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateInput changes only the non-nil fields.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Status      *model.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

type Filter struct {
	Status model.ProjectStatus
	Search string
}

type GetInput struct {
	Filter        Filter
	Sort          paginator.SortQuery
	PaginateQuery paginator.PaginateQuery
}

type GetProjectOutput struct {
	Projects  []model.Project
	Paginator paginator.Paginator
}

type ExportInput struct {
	Filter Filter
	Sort   paginator.SortQuery
}
