package repository

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

type Filter struct {
	DeviceID   string
	DeviceType model.DeviceType
	From       time.Time
	To         time.Time
}

type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ListOptions struct {
	Filter Filter
	Limit  int
}

type CreateOptions struct {
	Reading model.Reading
}
