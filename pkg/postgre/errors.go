package postgre

import "errors"

var (
	ErrInvalidUUID = errors.New("invalid UUID format")
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
)
