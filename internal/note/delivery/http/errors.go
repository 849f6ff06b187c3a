package http

import (
	"net/http"

	"tracker-api/internal/note"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errUnauthorized  = pkgErrors.NewUnauthorizedHTTPError()
	errWrongBody     = pkgErrors.NewHTTPErrorWithStatus(130001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = pkgErrors.NewHTTPErrorWithStatus(130002, "Wrong query", http.StatusBadRequest)
	errNoteNotFound  = pkgErrors.NewHTTPErrorWithStatus(130003, "Note not found", http.StatusNotFound)
	errTitleRequired = pkgErrors.NewHTTPErrorWithStatus(130004, "Title is required", http.StatusBadRequest)
	errTitleTooLong  = pkgErrors.NewHTTPErrorWithStatus(130005, "Title is too long", http.StatusBadRequest)
	errForbidden     = pkgErrors.NewHTTPErrorWithStatus(130006, "You can only list your own notes", http.StatusForbidden)
)

var errorMapping = response.ErrorMapping{
	note.ErrNoteNotFound:  errNoteNotFound,
	note.ErrTitleRequired: errTitleRequired,
	note.ErrTitleTooLong:  errTitleTooLong,
	note.ErrForbidden:     errForbidden,
}
