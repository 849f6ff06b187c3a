package minio

import (
	"strings"
)

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return newInvalidInput("config", "endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return newInvalidInput("config", "access key and secret key are required")
	}
	return nil
}

func validateBucketName(op, name string) error {
	if len(name) < 3 || len(name) > 63 {
		return newInvalidInput(op, "bucket name must be between 3 and 63 characters")
	}
	if strings.ToLower(name) != name {
		return newInvalidInput(op, "bucket name must be lowercase")
	}
	return nil
}

func validateObjectName(op, name string) error {
	if name == "" || len(name) > 1024 {
		return newInvalidInput(op, "object name must be between 1 and 1024 characters")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return newInvalidInput(op, "object name must be a relative path")
	}
	return nil
}

func validateUpload(req *UploadRequest) error {
	const op = "upload_file"
	if req == nil || req.Reader == nil {
		return newInvalidInput(op, "reader is required")
	}
	if err := validateBucketName(op, req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(op, req.ObjectName); err != nil {
		return err
	}
	if req.Size <= 0 {
		return newInvalidInput(op, "size must be positive")
	}
	return nil
}
