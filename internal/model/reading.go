package model

import "time"

type DeviceType string

const (
	DeviceTypeESP32       DeviceType = "esp32"
	DeviceTypeRaspberryPi DeviceType = "raspberry_pi"
)

func (t DeviceType) IsValid() bool {
	return t == DeviceTypeESP32 || t == DeviceTypeRaspberryPi
}

// Reading is one temperature sample reported by a device.
type Reading struct {
	ID           string     `json:"id"`
	DeviceID     string     `json:"device_id"`
	DeviceType   DeviceType `json:"device_type"`
	TemperatureC float64    `json:"temperature_c"`
	Humidity     *float64   `json:"humidity,omitempty"`
	RecordedAt   time.Time  `json:"recorded_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ReadingSummary aggregates a device's readings over a range.
type ReadingSummary struct {
	DeviceID   string     `json:"device_id"`
	DeviceType DeviceType `json:"device_type"`
	Count      int64      `json:"count"`
	MinC       float64    `json:"min_c"`
	MaxC       float64    `json:"max_c"`
	AvgC       float64    `json:"avg_c"`
	FirstAt    time.Time  `json:"first_at"`
	LastAt     time.Time  `json:"last_at"`
}
