package postgre

import (
	"context"
	"strings"

	"tracker-api/internal/user/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildFilterQuery(ctx context.Context, f repository.Filter) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{
		qm.From(tableUsers),
		qm.Where("deleted_at IS NULL"),
	}

	if len(f.IDs) > 0 {
		for _, id := range f.IDs {
			if err := postgrePkg.IsUUID(id); err != nil {
				r.l.Errorf(ctx, "internal.user.repository.postgre.buildFilterQuery.IsUUID: %v", err)
				return nil, err
			}
		}
		mods = append(mods, qm.WhereIn("id IN ?", postgrePkg.ToInterfaces(f.IDs)...))
	}
	if f.Role != "" {
		mods = append(mods, qm.Where("role = ?", f.Role))
	}
	if f.IsActive != nil {
		mods = append(mods, qm.Where("COALESCE(is_active, TRUE) = ?", *f.IsActive))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := postgrePkg.ContainsPattern(s)
		mods = append(mods, qm.Where("(username ILIKE ? ESCAPE '!' OR full_name ILIKE ? ESCAPE '!')", like, like))
	}

	return mods, nil
}

func (r *implRepository) buildGetQuery(ctx context.Context, opts repository.GetOptions, pq paginator.PaginateQuery) ([]qm.QueryMod, error) {
	mods, err := r.buildFilterQuery(ctx, opts.Filter)
	if err != nil {
		return nil, err
	}

	mods = append([]qm.QueryMod{qm.Select(userCols)}, mods...)
	mods = append(mods,
		qm.OrderBy("created_at DESC"),
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
	)
	return mods, nil
}

func (r *implRepository) buildGetOneQuery(ctx context.Context, opts repository.GetOneOptions) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{
		qm.Select(userCols),
		qm.From(tableUsers),
		qm.Where("deleted_at IS NULL"),
	}

	switch {
	case opts.ID != "":
		if err := postgrePkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.buildGetOneQuery.IsUUID: %v", err)
			return nil, err
		}
		mods = append(mods, qm.Where("id = ?", opts.ID))
	case opts.Username != "":
		mods = append(mods, qm.Where("LOWER(username) = LOWER(?)", opts.Username))
	default:
		return nil, repository.ErrNotFound
	}

	return append(mods, qm.Limit(1)), nil
}
