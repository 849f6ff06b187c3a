package minio

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

const originalNameKey = "original-name"

// Connect verifies the endpoint by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.client.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return &StorageError{Code: ErrCodeConnection, Message: "not connected", Operation: "health_check"}
	}
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName("ensure_bucket", bucketName); err != nil {
		return err
	}
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "ensure_bucket")
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return handleMinIOError(err, "ensure_bucket")
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUpload(req); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	if req.OriginalName != "" {
		meta[originalNameKey] = req.OriginalName
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

// PresignedDownloadURL signs a GET that downloads the object as downloadName.
func (m *implMinIO) PresignedDownloadURL(ctx context.Context, bucketName, objectName, downloadName string, expiry time.Duration) (*PresignedURL, error) {
	const op = "presigned_download_url"
	if err := validateBucketName(op, bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(op, objectName); err != nil {
		return nil, err
	}
	if expiry <= 0 || expiry > 7*24*time.Hour {
		return nil, newInvalidInput(op, "expiry must be between 1s and 7 days")
	}

	params := url.Values{}
	if downloadName != "" {
		params.Set("response-content-disposition", mime.FormatMediaType("attachment", map[string]string{"filename": downloadName}))
	}

	u, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, params)
	if err != nil {
		return nil, handleMinIOError(err, op)
	}
	return &PresignedURL{URL: u.String(), ExpiresAt: time.Now().Add(expiry)}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	const op = "delete_file"
	if err := validateBucketName(op, bucketName); err != nil {
		return err
	}
	if err := validateObjectName(op, objectName); err != nil {
		return err
	}
	if err := m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, op)
	}
	return nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if se := handleMinIOError(err, "stat_object"); se.Code == ErrCodeObjectNotFound {
			return false, nil
		}
		return false, handleMinIOError(err, "stat_object")
	}
	return true, nil
}

// handleMinIOError converts client errors into StorageError.
func handleMinIOError(err error, operation string) *StorageError {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket":
			return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found: " + resp.BucketName, Operation: operation, Cause: err}
		case "NoSuchKey":
			return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found: " + resp.Key, Operation: operation, Cause: err}
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("minio operation failed: %s", resp.Code), Operation: operation, Cause: err}
		}
	}
	return &StorageError{Code: ErrCodeConnection, Message: "storage unavailable", Operation: operation, Cause: err}
}
