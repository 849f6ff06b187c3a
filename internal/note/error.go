package note

import "errors"

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrTitleRequired = errors.New("note title is required")
	ErrTitleTooLong  = errors.New("note title too long")
	ErrForbidden     = errors.New("cannot list other users' notes")
)
