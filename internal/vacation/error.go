package vacation

import "errors"

var (
	ErrVacationNotFound = errors.New("vacation not found")
	ErrInvalidDateRange = errors.New("end date before start date")
	ErrOverlap          = errors.New("vacation overlaps an existing request")
	ErrInvalidStatus    = errors.New("invalid vacation status")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrForbidden        = errors.New("cannot list other users' vacations")
	ErrNotPending       = errors.New("vacation already reviewed")
)
