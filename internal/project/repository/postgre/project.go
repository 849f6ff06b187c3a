package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tracker-api/internal/model"
	"tracker-api/internal/project/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	if err := postgrePkg.IsUUID(id); err != nil {
		return model.Project{}, repository.ErrNotFound
	}

	var row projectRow
	err := postgrePkg.NewQuery(
		qm.Select(projectCols),
		qm.From(tableProjects),
		qm.Where("id = ? AND deleted_at IS NULL", id),
		qm.Limit(1),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.project.repository.postgre.Detail.Bind: %v", err)
		return model.Project{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Project, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	cntMods, err := r.buildFilterQuery(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	var total int64
	if err := postgrePkg.NewQuery(append([]qm.QueryMod{qm.Select("COUNT(*)")}, cntMods...)...).
		QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	mods, err := r.buildGetQuery(ctx, opts)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	var rows []projectRow
	if err := postgrePkg.NewQuery(mods...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return toModels(rows), paginator.New(opts.PaginateQuery, total, len(rows)), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Project, error) {
	mods, err := r.buildListQuery(ctx, opts)
	if err != nil {
		return nil, err
	}

	var rows []projectRow
	if err := postgrePkg.NewQuery(mods...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.List.Bind: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Project, error) {
	p := opts.Project
	if err := postgrePkg.IsUUID(p.ID); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Create.IsUUID: %v", err)
		return model.Project{}, err
	}

	now := r.clock()
	var row projectRow
	err := queries.Raw(
		`INSERT INTO projects (id, name, description, status, owner_id, start_date, end_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+projectCols,
		p.ID, p.Name, null.StringFromPtr(p.Description), string(p.Status), p.OwnerID,
		null.TimeFromPtr(p.StartDate), null.TimeFromPtr(p.EndDate), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Create.Insert: %v", err)
		return model.Project{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Project, error) {
	p := opts.Project
	if err := postgrePkg.IsUUID(p.ID); err != nil {
		return model.Project{}, repository.ErrNotFound
	}

	var row projectRow
	err := queries.Raw(
		`UPDATE projects
		 SET name = $2, description = $3, status = $4, start_date = $5, end_date = $6, updated_at = $7
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+projectCols,
		p.ID, p.Name, null.StringFromPtr(p.Description), string(p.Status),
		null.TimeFromPtr(p.StartDate), null.TimeFromPtr(p.EndDate), r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.project.repository.postgre.Update.Update: %v", err)
		return model.Project{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgrePkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := queries.Raw(
		`UPDATE projects SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, r.clock(),
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
