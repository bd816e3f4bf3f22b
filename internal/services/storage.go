package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"alfredoptarigan/resume-ats/internal/config"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
	StorageDriverNone  = "none"

	uploadPrefix = "resume"
)

// StorageService archives uploaded resumes. Save returns where the file went.
type StorageService interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}

// NewStorageService picks the archive backend named by cfg.Driver.
func NewStorageService(ctx context.Context, cfg config.StorageConfig) (StorageService, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", StorageDriverLocal:
		return NewLocalStorage(cfg.UploadPath)
	case StorageDriverS3:
		return NewS3Storage(ctx, cfg.S3)
	case StorageDriverNone:
		return noopStorage{}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type localStorage struct {
	uploadPath string
}

func NewLocalStorage(uploadPath string) (StorageService, error) {
	s := &localStorage{uploadPath: uploadPath}
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return s, nil
}

func (s *localStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	filePath := filepath.Join(s.uploadPath, uniqueFilename(filename))

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

type s3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage targets AWS S3, or any S3 compatible store such as R2 when
// cfg.Endpoint is set.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (StorageService, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Storage{client: client, bucket: cfg.Bucket}, nil
}

func (s *s3Storage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := "uploads/" + uniqueFilename(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

type noopStorage struct{}

func (noopStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	return "", nil
}

func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".pdf"
	}
	return fmt.Sprintf("%s_%s%s", uploadPrefix, uuid.New().String(), ext)
}
