package http

import (
	"net/http"

	"tracker-api/internal/project"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errWrongBody        = pkgErrors.NewHTTPErrorWithStatus(110001, "Wrong body", http.StatusBadRequest)
	errWrongQuery       = pkgErrors.NewHTTPErrorWithStatus(110002, "Wrong query", http.StatusBadRequest)
	errInvalidDate      = pkgErrors.NewHTTPErrorWithStatus(110003, "Dates must be YYYY-MM-DD", http.StatusBadRequest)
	errProjectNotFound  = pkgErrors.NewHTTPErrorWithStatus(110004, "Project not found", http.StatusNotFound)
	errNameRequired     = pkgErrors.NewHTTPErrorWithStatus(110005, "Project name is required", http.StatusBadRequest)
	errInvalidStatus    = pkgErrors.NewHTTPErrorWithStatus(110006, "Status must be planned, active, paused or completed", http.StatusBadRequest)
	errInvalidDateRange = pkgErrors.NewHTTPErrorWithStatus(110007, "End date must not be before start date", http.StatusBadRequest)
)

var errorMapping = response.ErrorMapping{
	project.ErrProjectNotFound:  errProjectNotFound,
	project.ErrNameRequired:     errNameRequired,
	project.ErrInvalidStatus:    errInvalidStatus,
	project.ErrInvalidDateRange: errInvalidDateRange,
}
