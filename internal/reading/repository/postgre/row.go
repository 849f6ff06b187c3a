package postgre

import (
	"time"

	"tracker-api/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	tableReadings = "readings"
	readingCols   = "id, device_id, device_type, temperature_c, humidity, recorded_at, created_at"
	summaryCols   = "device_id, device_type, COUNT(*) AS count, MIN(temperature_c) AS min_c, " +
		"MAX(temperature_c) AS max_c, AVG(temperature_c) AS avg_c, " +
		"MIN(recorded_at) AS first_at, MAX(recorded_at) AS last_at"
)

type readingRow struct {
	ID           string       `boil:"id"`
	DeviceID     string       `boil:"device_id"`
	DeviceType   string       `boil:"device_type"`
	TemperatureC float64      `boil:"temperature_c"`
	Humidity     null.Float64 `boil:"humidity"`
	RecordedAt   time.Time    `boil:"recorded_at"`
	CreatedAt    time.Time    `boil:"created_at"`
}

func (r readingRow) toModel() model.Reading {
	return model.Reading{
		ID:           r.ID,
		DeviceID:     r.DeviceID,
		DeviceType:   model.DeviceType(r.DeviceType),
		TemperatureC: r.TemperatureC,
		Humidity:     r.Humidity.Ptr(),
		RecordedAt:   r.RecordedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func toModels(rows []readingRow) []model.Reading {
	res := make([]model.Reading, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}

type summaryRow struct {
	DeviceID   string    `boil:"device_id"`
	DeviceType string    `boil:"device_type"`
	Count      int64     `boil:"count"`
	MinC       float64   `boil:"min_c"`
	MaxC       float64   `boil:"max_c"`
	AvgC       float64   `boil:"avg_c"`
	FirstAt    time.Time `boil:"first_at"`
	LastAt     time.Time `boil:"last_at"`
}

func (r summaryRow) toModel() model.ReadingSummary {
	return model.ReadingSummary{
		DeviceID:   r.DeviceID,
		DeviceType: model.DeviceType(r.DeviceType),
		Count:      r.Count,
		MinC:       r.MinC,
		MaxC:       r.MaxC,
		AvgC:       r.AvgC,
		FirstAt:    r.FirstAt,
		LastAt:     r.LastAt,
	}
}
