package note

import (
	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

const MaxTitleLen = 200

type CreateInput struct {
	Title   string
	Content string
	Pinned  bool
}

type UpdateInput struct {
	ID      string
	Title   *string
	Content *string
	Pinned  *bool
}

// Filter selects notes. All and UserID need viewAllProjects; by default only
// the caller's notes are returned.
type Filter struct {
	All    bool
	UserID string
	Search string
	Pinned *bool
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetNoteOutput struct {
	Notes     []model.Note
	Paginator paginator.Paginator
}
