package usecase

import (
	"context"
	"errors"

	"tracker-api/internal/attachment"
	"tracker-api/internal/attachment/repository"
	"tracker-api/internal/model"
	"tracker-api/pkg/minio"
	postgrePkg "tracker-api/pkg/postgre"
)

func (uc *usecase) Upload(ctx context.Context, sc model.Scope, ip attachment.UploadInput) (model.Attachment, error) {
	if ip.Size <= 0 || ip.Reader == nil {
		return model.Attachment{}, attachment.ErrFileEmpty
	}
	if uc.cfg.MaxUploadSize > 0 && ip.Size > uc.cfg.MaxUploadSize {
		return model.Attachment{}, attachment.ErrFileTooLarge
	}

	p, err := uc.visibleProject(ctx, sc, ip.ProjectID)
	if err != nil {
		return model.Attachment{}, err
	}

	contentType, body, err := sniff(ip.Reader)
	if err != nil {
		uc.l.Errorf(ctx, "internal.attachment.usecase.Upload.sniff: %v", err)
		return model.Attachment{}, err
	}
	if !isAllowed(contentType) {
		return model.Attachment{}, attachment.ErrFileTypeNotAllowed
	}

	id := postgrePkg.NewUUID()
	name := cleanFileName(ip.FileName)
	key := objectKey(p.ID, id, name)

	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.Bucket,
		ObjectName:   key,
		OriginalName: name,
		Reader:       body,
		Size:         ip.Size,
		ContentType:  contentType,
		Metadata:     map[string]string{"project-id": p.ID, "uploaded-by": sc.UserID},
	}); err != nil {
		uc.l.Errorf(ctx, "internal.attachment.usecase.Upload.UploadFile: %v", err)
		return model.Attachment{}, err
	}

	a, err := uc.repo.Create(ctx, model.Attachment{
		ID:          id,
		ProjectID:   p.ID,
		FileName:    name,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        ip.Size,
		UploadedBy:  sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.attachment.usecase.Upload.Create: %v", err)
		uc.removeObject(ctx, key)
		return model.Attachment{}, err
	}

	return a, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, projectID string) ([]model.Attachment, error) {
	if _, err := uc.visibleProject(ctx, sc, projectID); err != nil {
		return nil, err
	}

	as, err := uc.repo.List(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.attachment.usecase.List: %v", err)
		return nil, err
	}

	return as, nil
}

func (uc *usecase) detail(ctx context.Context, sc model.Scope, projectID, id string) (model.Attachment, error) {
	if _, err := uc.visibleProject(ctx, sc, projectID); err != nil {
		return model.Attachment{}, err
	}

	a, err := uc.repo.Detail(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Attachment{}, attachment.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.attachment.usecase.detail: %v", err)
		return model.Attachment{}, err
	}

	return a, nil
}

func (uc *usecase) Download(ctx context.Context, sc model.Scope, projectID, id string) (attachment.DownloadOutput, error) {
	a, err := uc.detail(ctx, sc, projectID, id)
	if err != nil {
		return attachment.DownloadOutput{}, err
	}

	u, err := uc.storage.PresignedDownloadURL(ctx, uc.cfg.Bucket, a.ObjectKey, a.FileName, uc.cfg.PresignExpiry)
	if err != nil {
		if minio.IsNotFound(err) {
			return attachment.DownloadOutput{}, attachment.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.attachment.usecase.Download.PresignedDownloadURL: %v", err)
		return attachment.DownloadOutput{}, err
	}

	return attachment.DownloadOutput{URL: u.URL, FileName: a.FileName, ExpiresAt: u.ExpiresAt}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, projectID, id string) error {
	a, err := uc.detail(ctx, sc, projectID, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return attachment.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.attachment.usecase.Delete: %v", err)
		return err
	}
	uc.removeObject(ctx, a.ObjectKey)

	return nil
}

func (uc *usecase) DeleteByProject(ctx context.Context, sc model.Scope, projectID string) error {
	as, err := uc.repo.DeleteByProject(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.attachment.usecase.DeleteByProject: %v", err)
		return err
	}
	for _, a := range as {
		uc.removeObject(ctx, a.ObjectKey)
	}

	return nil
}

// removeObject deletes a stored object; failures only leave an orphan and are logged.
func (uc *usecase) removeObject(ctx context.Context, key string) {
	if err := uc.storage.DeleteFile(ctx, uc.cfg.Bucket, key); err != nil && !minio.IsNotFound(err) {
		uc.l.Warnf(ctx, "internal.attachment.usecase.removeObject.DeleteFile: %v", err)
	}
}
