package postgre

import (
	"context"
	"strings"

	"tracker-api/internal/project/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// sortColumns are the only columns accepted in ORDER BY.
var sortColumns = map[string]bool{
	"name":       true,
	"created_at": true,
	"status":     true,
	"start_date": true,
}

func (r *implRepository) buildFilterQuery(ctx context.Context, f repository.Filter) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{
		qm.From(tableProjects),
		qm.Where("deleted_at IS NULL"),
	}

	if len(f.IDs) > 0 {
		for _, id := range f.IDs {
			if err := postgrePkg.IsUUID(id); err != nil {
				r.l.Errorf(ctx, "internal.project.repository.postgre.buildFilterQuery.IsUUID: %v", err)
				return nil, err
			}
		}
		mods = append(mods, qm.WhereIn("id IN ?", postgrePkg.ToInterfaces(f.IDs)...))
	}
	if f.OwnerID != "" {
		mods = append(mods, qm.Where("owner_id = ?", f.OwnerID))
	}
	if f.Status != "" {
		mods = append(mods, qm.Where("status = ?", string(f.Status)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := postgrePkg.ContainsPattern(s)
		mods = append(mods, qm.Where("(name ILIKE ? ESCAPE '!' OR description ILIKE ? ESCAPE '!')", like, like))
	}

	return mods, nil
}

func orderClause(o repository.Order) string {
	col := o.Column
	if !sortColumns[col] {
		col = "created_at"
	}
	dir := o.Direction
	if dir == "" {
		dir = paginator.Desc
	}
	// id breaks ties so pages are stable.
	return paginator.OrderBy(col, dir) + ", id ASC"
}

func (r *implRepository) buildListQuery(ctx context.Context, opts repository.ListOptions) ([]qm.QueryMod, error) {
	mods, err := r.buildFilterQuery(ctx, opts.Filter)
	if err != nil {
		return nil, err
	}

	mods = append([]qm.QueryMod{qm.Select(projectCols)}, mods...)
	return append(mods, qm.OrderBy(orderClause(opts.Order))), nil
}

func (r *implRepository) buildGetQuery(ctx context.Context, opts repository.GetOptions) ([]qm.QueryMod, error) {
	mods, err := r.buildListQuery(ctx, repository.ListOptions{Filter: opts.Filter, Order: opts.Order})
	if err != nil {
		return nil, err
	}

	return append(mods,
		qm.Limit(int(opts.PaginateQuery.Limit)),
		qm.Offset(int(opts.PaginateQuery.Offset())),
	), nil
}
