package errors

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
)

// HTTPError is an error that carries its own response status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns an HTTPError whose status code equals code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: code}
}

// NewHTTPErrorWithStatus returns an HTTPError with an application code distinct
// from the HTTP status. A zero status defaults to 400.
func NewHTTPErrorWithStatus(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: statusCode}
}

func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, MessageUnauthorized)
}

func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(http.StatusForbidden, MessageForbidden)
}

func (e *HTTPError) Error() string {
	return e.Message
}

func joinMessages(field string, messages []string) string {
	return fmt.Sprintf("%s: %s", field, strings.Join(messages, ", "))
}
