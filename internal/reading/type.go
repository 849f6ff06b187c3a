package reading

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/paginator"
)

// Sensor limits of the supported boards.
const (
	MinTemperatureC = -55.0
	MaxTemperatureC = 125.0
	MaxDeviceIDLen  = 64
)

type Config struct {
	DeviceKey string
	TicketTTL time.Duration
}

type IngestInput struct {
	DeviceKey    string
	DeviceID     string
	DeviceType   model.DeviceType
	TemperatureC float64
	Humidity     *float64
	RecordedAt   *time.Time
}

// Filter narrows readings. Zero times leave the range open.
type Filter struct {
	DeviceID   string
	DeviceType model.DeviceType
	From       time.Time
	To         time.Time
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetReadingOutput struct {
	Readings  []model.Reading
	Paginator paginator.Paginator
}

type TicketOutput struct {
	Ticket    string
	ExpiresAt time.Time
}
