package repository

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type Filter struct {
	// UserID restricts results to one requester; empty means everyone.
	UserID string
	Status model.VacationStatus
	// From and To keep vacations intersecting the inclusive range; zero means unbounded.
	From time.Time
	To   time.Time
}

type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// OverlapOptions finds a user's pending or approved vacations intersecting a range.
type OverlapOptions struct {
	UserID    string
	From      time.Time
	To        time.Time
	ExcludeID string
}

type CreateOptions struct {
	Vacation model.Vacation
}

type UpdateStatusOptions struct {
	ID         string
	Status     model.VacationStatus
	ReviewedBy string
}
