package postgre

import (
	"time"

	"tracker-api/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	tableVacations = "vacations"
	// noOverlapConstraint guards concurrent writes the overlap query cannot see.
	noOverlapConstraint = "vacations_no_overlap"
	vacationCols        = "id, user_id, start_date, end_date, reason, status, reviewed_by, created_at, updated_at"
)

type vacationRow struct {
	ID         string      `boil:"id"`
	UserID     string      `boil:"user_id"`
	StartDate  time.Time   `boil:"start_date"`
	EndDate    time.Time   `boil:"end_date"`
	Reason     null.String `boil:"reason"`
	Status     string      `boil:"status"`
	ReviewedBy null.String `boil:"reviewed_by"`
	CreatedAt  time.Time   `boil:"created_at"`
	UpdatedAt  time.Time   `boil:"updated_at"`
}

func (r vacationRow) toModel() model.Vacation {
	return model.Vacation{
		ID:         r.ID,
		UserID:     r.UserID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Reason:     r.Reason.Ptr(),
		Status:     model.VacationStatus(r.Status),
		ReviewedBy: r.ReviewedBy.Ptr(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toModels(rows []vacationRow) []model.Vacation {
	res := make([]model.Vacation, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}
