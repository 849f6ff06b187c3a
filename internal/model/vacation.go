package model

import "time"

type VacationStatus string

const (
	VacationStatusPending  VacationStatus = "pending"
	VacationStatusApproved VacationStatus = "approved"
	VacationStatusRejected VacationStatus = "rejected"
)

func (s VacationStatus) IsValid() bool {
	switch s {
	case VacationStatusPending, VacationStatusApproved, VacationStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether s is a valid reviewer outcome.
func (s VacationStatus) IsDecision() bool {
	return s == VacationStatusApproved || s == VacationStatusRejected
}

// Vacation is a leave request. Start and End are inclusive calendar dates.
type Vacation struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Reason     *string        `json:"reason,omitempty"`
	Status     VacationStatus `json:"status"`
	ReviewedBy *string        `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Days returns the number of calendar days covered.
func (v Vacation) Days() int {
	return int(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}

// Overlaps reports whether the inclusive ranges intersect.
func (v Vacation) Overlaps(start, end time.Time) bool {
	return !v.StartDate.After(end) && !start.After(v.EndDate)
}
