package http

import (
	"tracker-api/internal/attachment"
	"tracker-api/internal/model"
	"tracker-api/pkg/response"
)

type attachmentResp struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	FileName    string            `json:"file_name"`
	ContentType string            `json:"content_type"`
	Size        int64             `json:"size"`
	UploadedBy  string            `json:"uploaded_by"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func (h *Handler) newAttachmentResp(a model.Attachment) attachmentResp {
	return attachmentResp{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   response.DateTime(a.CreatedAt),
	}
}

type listResp struct {
	Items []attachmentResp `json:"items"`
}

func (h *Handler) newListResp(as []model.Attachment) listResp {
	items := make([]attachmentResp, 0, len(as))
	for _, a := range as {
		items = append(items, h.newAttachmentResp(a))
	}
	return listResp{Items: items}
}

type downloadResp struct {
	URL       string            `json:"url"`
	FileName  string            `json:"file_name"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func (h *Handler) newDownloadResp(o attachment.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       o.URL,
		FileName:  o.FileName,
		ExpiresAt: response.DateTime(o.ExpiresAt),
	}
}
