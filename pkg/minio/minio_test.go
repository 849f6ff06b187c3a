package minio

import (
	"errors"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinIO_Validation(t *testing.T) {
	_, err := NewMinIO(Config{})
	require.Error(t, err)

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeInvalidInput, se.Code)

	m, err := NewMinIO(Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	require.NoError(t, err)
	assert.NoError(t, m.Close())
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		req     *UploadRequest
		wantErr bool
	}{
		{name: "nil", req: nil, wantErr: true},
		{name: "short bucket", req: &UploadRequest{BucketName: "ab", ObjectName: "x", Reader: strings.NewReader("a"), Size: 1}, wantErr: true},
		{name: "traversal", req: &UploadRequest{BucketName: "files", ObjectName: "../x", Reader: strings.NewReader("a"), Size: 1}, wantErr: true},
		{name: "empty", req: &UploadRequest{BucketName: "files", ObjectName: "x", Reader: strings.NewReader(""), Size: 0}, wantErr: true},
		{name: "ok", req: &UploadRequest{BucketName: "files", ObjectName: "p/1/x.pdf", Reader: strings.NewReader("a"), Size: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpload(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHandleMinIOError(t *testing.T) {
	se := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey", Key: "a.txt"}, "stat")
	assert.Equal(t, ErrCodeObjectNotFound, se.Code)
	assert.True(t, IsNotFound(se))

	se = handleMinIOError(minio.ErrorResponse{Code: "AccessDenied"}, "put")
	assert.Equal(t, ErrCodePermission, se.Code)
	assert.False(t, IsNotFound(se))

	se = handleMinIOError(errors.New("dial tcp"), "put")
	assert.Equal(t, ErrCodeConnection, se.Code)
}
