package minio

import (
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config is the connection configuration for the storage client.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// UploadRequest describes an object to store.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// PresignedURL is a time-limited direct download link.
type PresignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type implMinIO struct {
	client    *minio.Client
	cfg       Config
	mu        sync.RWMutex
	connected bool
}
