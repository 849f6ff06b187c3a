package http

import (
	"net/http"

	"tracker-api/internal/vacation"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errUnauthorized     = pkgErrors.NewUnauthorizedHTTPError()
	errWrongBody        = pkgErrors.NewHTTPErrorWithStatus(140001, "Wrong body", http.StatusBadRequest)
	errWrongQuery       = pkgErrors.NewHTTPErrorWithStatus(140002, "Wrong query", http.StatusBadRequest)
	errInvalidDate      = pkgErrors.NewHTTPErrorWithStatus(140003, "Dates must use YYYY-MM-DD", http.StatusBadRequest)
	errVacationNotFound = pkgErrors.NewHTTPErrorWithStatus(140004, "Vacation not found", http.StatusNotFound)
	errInvalidDateRange = pkgErrors.NewHTTPErrorWithStatus(140005, "End date must not be before start date", http.StatusBadRequest)
	errOverlap          = pkgErrors.NewHTTPErrorWithStatus(140006, "Vacation overlaps an existing request", http.StatusConflict)
	errInvalidStatus    = pkgErrors.NewHTTPErrorWithStatus(140007, "Invalid status", http.StatusBadRequest)
	errInvalidMonth     = pkgErrors.NewHTTPErrorWithStatus(140008, "Month must use YYYY-MM", http.StatusBadRequest)
	errForbidden        = pkgErrors.NewHTTPErrorWithStatus(140009, "You can only list your own vacations", http.StatusForbidden)
	errNotPending       = pkgErrors.NewHTTPErrorWithStatus(140010, "Vacation already reviewed", http.StatusConflict)
)

var errorMapping = response.ErrorMapping{
	vacation.ErrVacationNotFound: errVacationNotFound,
	vacation.ErrInvalidDateRange: errInvalidDateRange,
	vacation.ErrOverlap:          errOverlap,
	vacation.ErrInvalidStatus:    errInvalidStatus,
	vacation.ErrInvalidMonth:     errInvalidMonth,
	vacation.ErrForbidden:        errForbidden,
	vacation.ErrNotPending:       errNotPending,
}
