package http

import (
	"net/http"

	"tracker-api/internal/user"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errWrongBody        = pkgErrors.NewHTTPErrorWithStatus(100001, "Wrong body", http.StatusBadRequest)
	errWrongQuery       = pkgErrors.NewHTTPErrorWithStatus(100002, "Wrong query", http.StatusBadRequest)
	errUserNotFound     = pkgErrors.NewHTTPErrorWithStatus(100003, "User not found", http.StatusNotFound)
	errUserExists       = pkgErrors.NewHTTPErrorWithStatus(100004, "Username already taken", http.StatusConflict)
	errInvalidRole      = pkgErrors.NewHTTPErrorWithStatus(100005, "Invalid role", http.StatusBadRequest)
	errFieldRequired    = pkgErrors.NewHTTPErrorWithStatus(100006, "Username is required", http.StatusBadRequest)
	errWeakPassword     = pkgErrors.NewHTTPErrorWithStatus(100007, "Password must be at least 8 characters", http.StatusBadRequest)
	errCannotModifySelf = pkgErrors.NewHTTPErrorWithStatus(100008, "You cannot change your own role, status or account", http.StatusForbidden)
)

var errUnauthorized = pkgErrors.NewUnauthorizedHTTPError()

var errorMapping = response.ErrorMapping{
	user.ErrUserNotFound:     errUserNotFound,
	user.ErrUserExists:       errUserExists,
	user.ErrInvalidRole:      errInvalidRole,
	user.ErrFieldRequired:    errFieldRequired,
	user.ErrWeakPassword:     errWeakPassword,
	user.ErrCannotModifySelf: errCannotModifySelf,
}
