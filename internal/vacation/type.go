package vacation

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

// MonthLayout is the format of the month filter, e.g. 2025-07.
const MonthLayout = "2006-01"

type CreateInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

type DecideInput struct {
	ID     string
	Status model.VacationStatus
}

// Filter selects vacations. All and UserID need viewReports; by default only
// the caller's requests are returned.
type Filter struct {
	All    bool
	UserID string
	Status model.VacationStatus
	Month  string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetVacationOutput struct {
	Vacations []model.Vacation
	Paginator paginator.Paginator
}
