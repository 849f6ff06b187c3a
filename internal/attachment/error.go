package attachment

import "errors"

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrFileEmpty          = errors.New("file is empty")
	ErrFileTooLarge       = errors.New("file too large")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)
