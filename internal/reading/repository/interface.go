package repository

import (
	"context"

	"tracker-api/internal/model"
	"tracker-api/internal/reading"
	"tracker-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, opts GetOptions) ([]model.Reading, paginator.Paginator, error)
	List(ctx context.Context, opts ListOptions) ([]model.Reading, error)
	Summary(ctx context.Context, f Filter) ([]model.ReadingSummary, error)
	Create(ctx context.Context, opts CreateOptions) (model.Reading, error)
}

// Broker fans live readings out to stream subscribers.
//
//go:generate mockery --name Broker
type Broker interface {
	Publish(ctx context.Context, r model.Reading) error
	Subscribe(ctx context.Context, deviceID string) (reading.Stream, error)
}
