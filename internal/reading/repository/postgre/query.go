package postgre

import (
	"tracker-api/internal/reading/repository"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const newestFirst = "recorded_at DESC, id ASC"

func buildFilterQuery(f repository.Filter) []qm.QueryMod {
	mods := []qm.QueryMod{qm.From(tableReadings)}

	if f.DeviceID != "" {
		mods = append(mods, qm.Where("device_id = ?", f.DeviceID))
	}
	if f.DeviceType != "" {
		mods = append(mods, qm.Where("device_type = ?", string(f.DeviceType)))
	}
	if !f.From.IsZero() {
		mods = append(mods, qm.Where("recorded_at >= ?", f.From))
	}
	if !f.To.IsZero() {
		mods = append(mods, qm.Where("recorded_at <= ?", f.To))
	}

	return mods
}

func buildGetQuery(opts repository.GetOptions) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(readingCols)}, buildFilterQuery(opts.Filter)...)
	return append(mods,
		qm.OrderBy(newestFirst),
		qm.Limit(int(opts.PaginateQuery.Limit)),
		qm.Offset(int(opts.PaginateQuery.Offset())),
	)
}

func buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(readingCols)}, buildFilterQuery(opts.Filter)...)
	mods = append(mods, qm.OrderBy(newestFirst))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}
	return mods
}

func buildSummaryQuery(f repository.Filter) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(summaryCols)}, buildFilterQuery(f)...)
	return append(mods,
		qm.GroupBy("device_id, device_type"),
		qm.OrderBy("device_id ASC"),
	)
}
