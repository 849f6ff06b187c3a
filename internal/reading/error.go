package reading

import "errors"

var (
	ErrInvalidDeviceKey   = errors.New("invalid device key")
	ErrDeviceIDRequired   = errors.New("device id is required")
	ErrInvalidDeviceType  = errors.New("invalid device type")
	ErrInvalidTemperature = errors.New("temperature out of range")
	ErrInvalidHumidity    = errors.New("humidity out of range")
	ErrInvalidRange       = errors.New("from after to")
)
