package http

import (
	"net/http"

	"tracker-api/internal/reading"
	pkgErrors "tracker-api/pkg/errors"
	"tracker-api/pkg/response"
)

var (
	errUnauthorized       = pkgErrors.NewUnauthorizedHTTPError()
	errWrongBody          = pkgErrors.NewHTTPErrorWithStatus(150001, "Wrong body", http.StatusBadRequest)
	errWrongQuery         = pkgErrors.NewHTTPErrorWithStatus(150002, "Wrong query", http.StatusBadRequest)
	errInvalidDeviceKey   = pkgErrors.NewHTTPErrorWithStatus(150003, "Invalid device key", http.StatusUnauthorized)
	errDeviceIDRequired   = pkgErrors.NewHTTPErrorWithStatus(150004, "device_id is required", http.StatusBadRequest)
	errInvalidDeviceType  = pkgErrors.NewHTTPErrorWithStatus(150005, "device_type must be esp32 or raspberry_pi", http.StatusBadRequest)
	errInvalidTemperature = pkgErrors.NewHTTPErrorWithStatus(150006, "Temperature out of sensor range", http.StatusBadRequest)
	errInvalidHumidity    = pkgErrors.NewHTTPErrorWithStatus(150007, "Humidity must be between 0 and 100", http.StatusBadRequest)
	errInvalidRange       = pkgErrors.NewHTTPErrorWithStatus(150008, "from must not be after to", http.StatusBadRequest)
	errInvalidTime        = pkgErrors.NewHTTPErrorWithStatus(150009, "Times must be RFC 3339 or YYYY-MM-DD", http.StatusBadRequest)
	errTooManyStreams     = pkgErrors.NewHTTPErrorWithStatus(150010, "Too many live connections", http.StatusTooManyRequests)
)

var errorMapping = response.ErrorMapping{
	reading.ErrInvalidDeviceKey:   errInvalidDeviceKey,
	reading.ErrDeviceIDRequired:   errDeviceIDRequired,
	reading.ErrInvalidDeviceType:  errInvalidDeviceType,
	reading.ErrInvalidTemperature: errInvalidTemperature,
	reading.ErrInvalidHumidity:    errInvalidHumidity,
	reading.ErrInvalidRange:       errInvalidRange,
}
