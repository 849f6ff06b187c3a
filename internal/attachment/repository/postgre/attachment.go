package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tracker-api/internal/attachment/repository"
	"tracker-api/internal/model"
	postgrePkg "tracker-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) List(ctx context.Context, projectID string) ([]model.Attachment, error) {
	if err := postgrePkg.IsUUID(projectID); err != nil {
		return nil, repository.ErrNotFound
	}

	var rows []attachmentRow
	err := postgrePkg.NewQuery(
		qm.Select(attachmentCols),
		qm.From(tableAttachments),
		qm.Where("project_id = ?", projectID),
		qm.OrderBy("created_at DESC, id ASC"),
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.List.Bind: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

func (r *implRepository) Detail(ctx context.Context, projectID, id string) (model.Attachment, error) {
	if postgrePkg.IsUUID(projectID) != nil || postgrePkg.IsUUID(id) != nil {
		return model.Attachment{}, repository.ErrNotFound
	}

	var row attachmentRow
	err := postgrePkg.NewQuery(
		qm.Select(attachmentCols),
		qm.From(tableAttachments),
		qm.Where("id = ? AND project_id = ?", id, projectID),
		qm.Limit(1),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Attachment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.Detail.Bind: %v", err)
		return model.Attachment{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, a model.Attachment) (model.Attachment, error) {
	var row attachmentRow
	err := queries.Raw(
		`INSERT INTO attachments (id, project_id, file_name, object_key, content_type, size, uploaded_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+attachmentCols,
		a.ID, a.ProjectID, a.FileName, a.ObjectKey, a.ContentType, a.Size, a.UploadedBy, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.Create.Insert: %v", err)
		return model.Attachment{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := queries.Raw(`DELETE FROM attachments WHERE id = $1`, id).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.Delete.RowsAffected: %v", err)
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) DeleteByProject(ctx context.Context, projectID string) ([]model.Attachment, error) {
	var rows []attachmentRow
	err := queries.Raw(
		`DELETE FROM attachments WHERE project_id = $1 RETURNING `+attachmentCols,
		projectID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.attachment.repository.postgre.DeleteByProject.Delete: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}
