package attachment

import (
	"io"
	"time"
)

// Config holds storage settings for attachments.
type Config struct {
	Bucket        string
	PresignExpiry time.Duration
	MaxUploadSize int64
}

type UploadInput struct {
	ProjectID string
	FileName  string
	Size      int64
	Reader    io.Reader
}

type DownloadOutput struct {
	URL       string
	FileName  string
	ExpiresAt time.Time
}
