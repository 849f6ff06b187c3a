package postgre

import (
	"time"

	"tracker-api/internal/model"
)

const (
	tableAttachments = "attachments"
	attachmentCols   = "id, project_id, file_name, object_key, content_type, size, uploaded_by, created_at"
)

type attachmentRow struct {
	ID          string    `boil:"id"`
	ProjectID   string    `boil:"project_id"`
	FileName    string    `boil:"file_name"`
	ObjectKey   string    `boil:"object_key"`
	ContentType string    `boil:"content_type"`
	Size        int64     `boil:"size"`
	UploadedBy  string    `boil:"uploaded_by"`
	CreatedAt   time.Time `boil:"created_at"`
}

func (r attachmentRow) toModel() model.Attachment {
	return model.Attachment{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		FileName:    r.FileName,
		ObjectKey:   r.ObjectKey,
		ContentType: r.ContentType,
		Size:        r.Size,
		UploadedBy:  r.UploadedBy,
		CreatedAt:   r.CreatedAt,
	}
}

func toModels(rows []attachmentRow) []model.Attachment {
	res := make([]model.Attachment, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}
