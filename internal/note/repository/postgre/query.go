package postgre

import (
	"strings"

	"tracker-api/internal/note/repository"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func buildFilterQuery(f repository.Filter) []qm.QueryMod {
	mods := []qm.QueryMod{qm.From(tableNotes)}

	if f.UserID != "" {
		mods = append(mods, qm.Where("user_id = ?", f.UserID))
	}
	if f.Pinned != nil {
		mods = append(mods, qm.Where("pinned = ?", *f.Pinned))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := postgrePkg.ContainsPattern(s)
		mods = append(mods, qm.Where("(title ILIKE ? ESCAPE '!' OR content ILIKE ? ESCAPE '!')", like, like))
	}

	return mods
}

func buildGetQuery(opts repository.GetOptions) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(noteCols)}, buildFilterQuery(opts.Filter)...)
	return append(mods,
		qm.OrderBy("pinned DESC, updated_at DESC, id ASC"),
		qm.Limit(int(opts.PaginateQuery.Limit)),
		qm.Offset(int(opts.PaginateQuery.Offset())),
	)
}
