package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrOverlap is returned when a write would leave two active entries of one
	// user covering the same day.
	ErrOverlap = errors.New("overlapping vacation")
)
