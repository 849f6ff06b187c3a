package usecase

import (
	"crypto/subtle"
	"strings"

	"tracker-api/internal/reading"
	"tracker-api/internal/reading/repository"
)

func (uc *usecase) validDeviceKey(key string) bool {
	if uc.cfg.DeviceKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(uc.cfg.DeviceKey)) == 1
}

func validateIngest(ip reading.IngestInput) error {
	id := strings.TrimSpace(ip.DeviceID)
	if id == "" || len(id) > reading.MaxDeviceIDLen {
		return reading.ErrDeviceIDRequired
	}
	if !ip.DeviceType.IsValid() {
		return reading.ErrInvalidDeviceType
	}
	if ip.TemperatureC < reading.MinTemperatureC || ip.TemperatureC > reading.MaxTemperatureC {
		return reading.ErrInvalidTemperature
	}
	if ip.Humidity != nil && (*ip.Humidity < 0 || *ip.Humidity > 100) {
		return reading.ErrInvalidHumidity
	}
	return nil
}

func toRepoFilter(f reading.Filter) (repository.Filter, error) {
	if f.DeviceType != "" && !f.DeviceType.IsValid() {
		return repository.Filter{}, reading.ErrInvalidDeviceType
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return repository.Filter{}, reading.ErrInvalidRange
	}
	return repository.Filter{
		DeviceID:   strings.TrimSpace(f.DeviceID),
		DeviceType: f.DeviceType,
		From:       f.From,
		To:         f.To,
	}, nil
}
