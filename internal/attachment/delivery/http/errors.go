package http

import (
	"net/http"

	"tracker-api/internal/attachment"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errUnauthorized       = pkgErrors.NewUnauthorizedHTTPError()
	errMissingFile        = pkgErrors.NewHTTPErrorWithStatus(120001, "Form field 'file' is required", http.StatusBadRequest)
	errProjectNotFound    = pkgErrors.NewHTTPErrorWithStatus(120002, "Project not found", http.StatusNotFound)
	errAttachmentNotFound = pkgErrors.NewHTTPErrorWithStatus(120003, "File not found", http.StatusNotFound)
	errFileEmpty          = pkgErrors.NewHTTPErrorWithStatus(120004, "File is empty", http.StatusBadRequest)
	errFileTooLarge       = pkgErrors.NewHTTPErrorWithStatus(120005, "File too large", http.StatusRequestEntityTooLarge)
	errFileTypeNotAllowed = pkgErrors.NewHTTPErrorWithStatus(120006, "File type not allowed", http.StatusUnsupportedMediaType)
)

var errorMapping = response.ErrorMapping{
	attachment.ErrProjectNotFound:    errProjectNotFound,
	attachment.ErrAttachmentNotFound: errAttachmentNotFound,
	attachment.ErrFileEmpty:          errFileEmpty,
	attachment.ErrFileTooLarge:       errFileTooLarge,
	attachment.ErrFileTypeNotAllowed: errFileTypeNotAllowed,
}
