package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tracker-api/internal/model"
	"tracker-api/internal/note/repository"
	"tracker-api/pkg/paginator"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Note, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	var total int64
	if err := postgrePkg.NewQuery(append([]qm.QueryMod{qm.Select("COUNT(*)")}, buildFilterQuery(opts.Filter)...)...).
		QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.note.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []noteRow
	if err := postgrePkg.NewQuery(buildGetQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.note.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return toModels(rows), paginator.New(opts.PaginateQuery, total, len(rows)), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	if err := postgrePkg.IsUUID(id); err != nil {
		return model.Note{}, repository.ErrNotFound
	}

	var row noteRow
	err := postgrePkg.NewQuery(
		qm.Select(noteCols),
		qm.From(tableNotes),
		qm.Where("id = ?", id),
		qm.Limit(1),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.note.repository.postgre.Detail.Bind: %v", err)
		return model.Note{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Note, error) {
	n := opts.Note

	var row noteRow
	err := queries.Raw(
		`INSERT INTO notes (id, user_id, title, content, pinned, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING `+noteCols,
		n.ID, n.UserID, n.Title, n.Content, n.Pinned, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.note.repository.postgre.Create.Insert: %v", err)
		return model.Note{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Note, error) {
	n := opts.Note

	var row noteRow
	err := queries.Raw(
		`UPDATE notes SET title = $2, content = $3, pinned = $4, updated_at = $5
		 WHERE id = $1
		 RETURNING `+noteCols,
		n.ID, n.Title, n.Content, n.Pinned, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.note.repository.postgre.Update.Update: %v", err)
		return model.Note{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := queries.Raw(`DELETE FROM notes WHERE id = $1`, id).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.note.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.note.repository.postgre.Delete.RowsAffected: %v", err)
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}
