package reading

import (
	"context"
	"io"

	"tracker-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Ingest(ctx context.Context, ip IngestInput) (model.Reading, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetReadingOutput, error)
	Summary(ctx context.Context, sc model.Scope, f Filter) ([]model.ReadingSummary, error)
	Export(ctx context.Context, sc model.Scope, f Filter, w io.Writer) error
	Ticket(ctx context.Context, sc model.Scope) (TicketOutput, error)
	Subscribe(ctx context.Context, sc model.Scope, deviceID string) (Stream, error)
}

// Stream delivers live readings of one device until Close is called.
type Stream interface {
	Readings() <-chan model.Reading
	Close() error
}
