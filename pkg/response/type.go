package response

import (
	"encoding/json"
	"time"

	"tracker-api/pkg/errors"
)

// Resp is the envelope of every JSON response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping translates domain errors to their HTTP form.
type ErrorMapping map[error]*errors.HTTPError

type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateFormat)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateTimeFormat)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// parseJSONTime reads a quoted time in layout. null leaves the zero time.
func parseJSONTime(b []byte, layout string) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		if string(b) == "null" {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return time.Parse(layout, s)
}
