package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tracker-api/internal/model"
	"tracker-api/internal/user/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	return r.GetOne(ctx, sc, repository.GetOneOptions{ID: id})
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	mods, err := r.buildGetOneQuery(ctx, opts)
	if err != nil {
		return model.User{}, err
	}

	var row userRow
	if err := postgrePkg.NewQuery(mods...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	cntMods, err := r.buildFilterQuery(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	var total int64
	if err := postgrePkg.NewQuery(append([]qm.QueryMod{qm.Select("COUNT(*)")}, cntMods...)...).
		QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	mods, err := r.buildGetQuery(ctx, opts, opts.PaginateQuery)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	var rows []userRow
	if err := postgrePkg.NewQuery(mods...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return toModels(rows), paginator.New(opts.PaginateQuery, total, len(rows)), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if err := postgrePkg.IsUUID(u.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Create.IsUUID: %v", err)
		return model.User{}, err
	}

	now := r.clock()
	var row userRow
	err := queries.Raw(
		`INSERT INTO users (id, username, full_name, password_hash, avatar_url, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+userCols,
		u.ID, u.Username, null.StringFromPtr(u.FullName), null.StringFromPtr(u.PasswordHash),
		null.StringFromPtr(u.AvatarURL), u.Role, null.BoolFromPtr(u.IsActive), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgrePkg.IsUniqueViolation(err) {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.Create.Insert: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	u := opts.User
	if err := postgrePkg.IsUUID(u.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Update.IsUUID: %v", err)
		return model.User{}, err
	}

	var row userRow
	err := queries.Raw(
		`UPDATE users
		 SET full_name = $2, password_hash = $3, avatar_url = $4, role = $5, is_active = $6, updated_at = $7
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+userCols,
		u.ID, null.StringFromPtr(u.FullName), null.StringFromPtr(u.PasswordHash),
		null.StringFromPtr(u.AvatarURL), u.Role, null.BoolFromPtr(u.IsActive), r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.Update.Update: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res, err := queries.Raw(
		`UPDATE users SET deleted_at = $2, is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`,
		id, r.clock(),
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
