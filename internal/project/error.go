package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrNameRequired     = errors.New("project name is required")
	ErrInvalidStatus    = errors.New("invalid project status")
	ErrInvalidDateRange = errors.New("end date before start date")
)
