package postgre

import (
	"tracker-api/internal/model"
	"tracker-api/internal/vacation/repository"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func buildFilterQuery(f repository.Filter) []qm.QueryMod {
	mods := []qm.QueryMod{qm.From(tableVacations)}

	if f.UserID != "" {
		mods = append(mods, qm.Where("user_id = ?", f.UserID))
	}
	if f.Status != "" {
		mods = append(mods, qm.Where("status = ?", string(f.Status)))
	}
	if !f.From.IsZero() {
		mods = append(mods, qm.Where("end_date >= ?", f.From))
	}
	if !f.To.IsZero() {
		mods = append(mods, qm.Where("start_date <= ?", f.To))
	}

	return mods
}

func buildGetQuery(opts repository.GetOptions) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(vacationCols)}, buildFilterQuery(opts.Filter)...)
	return append(mods,
		qm.OrderBy("start_date DESC, id ASC"),
		qm.Limit(int(opts.PaginateQuery.Limit)),
		qm.Offset(int(opts.PaginateQuery.Offset())),
	)
}

func buildOverlapQuery(opts repository.OverlapOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(vacationCols),
		qm.From(tableVacations),
		qm.Where("user_id = ?", opts.UserID),
		qm.WhereIn("status IN ?", string(model.VacationStatusPending), string(model.VacationStatusApproved)),
		qm.Where("start_date <= ?", opts.To),
		qm.Where("end_date >= ?", opts.From),
	}
	if opts.ExcludeID != "" {
		mods = append(mods, qm.Where("id <> ?", opts.ExcludeID))
	}
	return append(mods, qm.OrderBy("start_date ASC"))
}
