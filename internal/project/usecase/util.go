package usecase

import (
	"strings"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/project"
	"tracker-api/internal/project/repository"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/permission"
)

// sortFields maps client sort names to columns.
var sortFields = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"status":     "status",
	"start_date": "start_date",
}

// visibleFilter narrows f to the caller's own projects unless they may see all.
func visibleFilter(sc model.Scope, f project.Filter) repository.Filter {
	rf := repository.Filter{
		Status: f.Status,
		Search: f.Search,
	}
	if !sc.Can(permission.ViewAllProjects) {
		rf.OwnerID = sc.UserID
	}
	return rf
}

func resolveOrder(s paginator.SortQuery) repository.Order {
	col, dir := s.Resolve(sortFields, "created_at", paginator.Desc)
	return repository.Order{Column: col, Direction: dir}
}

func validateDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return project.ErrInvalidDateRange
	}
	return nil
}

func trimmedPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
