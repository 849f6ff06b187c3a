package http

import (
	"net/http"

	"tracker-api/internal/auth"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errWrongBody          = pkgErrors.NewHTTPErrorWithStatus(160001, "Wrong body", http.StatusBadRequest)
	errInvalidCredentials = pkgErrors.NewHTTPErrorWithStatus(160002, "Invalid username or password", http.StatusUnauthorized)
	errUserInactive       = pkgErrors.NewHTTPErrorWithStatus(160003, "Account is disabled", http.StatusForbidden)
	errUsernameTaken      = pkgErrors.NewHTTPErrorWithStatus(160004, "Username already taken", http.StatusConflict)
	errWeakPassword       = pkgErrors.NewHTTPErrorWithStatus(160005, "Password must be at least 8 characters", http.StatusBadRequest)
	errFieldRequired      = pkgErrors.NewHTTPErrorWithStatus(160006, "Username and password are required", http.StatusBadRequest)
	errSessionNotFound    = pkgErrors.NewHTTPErrorWithStatus(160007, "Session not found", http.StatusUnauthorized)
)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials: errInvalidCredentials,
	auth.ErrUserInactive:       errUserInactive,
	auth.ErrUsernameTaken:      errUsernameTaken,
	auth.ErrWeakPassword:       errWeakPassword,
	auth.ErrFieldRequired:      errFieldRequired,
	auth.ErrSessionNotFound:    errSessionNotFound,
}
