package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tracker-api/internal/model"
	"tracker-api/internal/vacation/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Vacation, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	var total int64
	if err := postgrePkg.NewQuery(append([]qm.QueryMod{qm.Select("COUNT(*)")}, buildFilterQuery(opts.Filter)...)...).
		QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []vacationRow
	if err := postgrePkg.NewQuery(buildGetQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return toModels(rows), paginator.New(opts.PaginateQuery, total, len(rows)), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Vacation, error) {
	if err := postgrePkg.IsUUID(id); err != nil {
		return model.Vacation{}, repository.ErrNotFound
	}

	var row vacationRow
	err := postgrePkg.NewQuery(
		qm.Select(vacationCols),
		qm.From(tableVacations),
		qm.Where("id = ?", id),
		qm.Limit(1),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vacation{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Detail.Bind: %v", err)
		return model.Vacation{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Overlapping(ctx context.Context, sc model.Scope, opts repository.OverlapOptions) ([]model.Vacation, error) {
	var rows []vacationRow
	if err := postgrePkg.NewQuery(buildOverlapQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Overlapping.Bind: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Vacation, error) {
	v := opts.Vacation

	var row vacationRow
	err := queries.Raw(
		`INSERT INTO vacations (id, user_id, start_date, end_date, reason, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+vacationCols,
		v.ID, v.UserID, v.StartDate, v.EndDate, null.StringFromPtr(v.Reason), string(v.Status), r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgrePkg.IsExclusionViolation(err, noOverlapConstraint) {
			return model.Vacation{}, repository.ErrOverlap
		}
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Create.Insert: %v", err)
		return model.Vacation{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Vacation, error) {
	var row vacationRow
	err := queries.Raw(
		`UPDATE vacations SET status = $2, reviewed_by = $3, updated_at = $4
		 WHERE id = $1
		 RETURNING `+vacationCols,
		opts.ID, string(opts.Status), opts.ReviewedBy, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vacation{}, repository.ErrNotFound
		}
		if postgrePkg.IsExclusionViolation(err, noOverlapConstraint) {
			return model.Vacation{}, repository.ErrOverlap
		}
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.UpdateStatus.Update: %v", err)
		return model.Vacation{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := queries.Raw(`DELETE FROM vacations WHERE id = $1`, id).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.vacation.repository.postgre.Delete.RowsAffected: %v", err)
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}
