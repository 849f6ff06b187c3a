package usecase

import (
	"time"

	"tracker-api/internal/vacation"
)

// dateOnly drops the clock part so inclusive ranges compare by calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthRange returns the first and last day of a YYYY-MM month.
func monthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse(vacation.MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, vacation.ErrInvalidMonth
	}
	return from, from.AddDate(0, 1, -1), nil
}
