package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc      func(entityType, entityID, fileExt string) (string, error)
	GeneratePresignedURLFunc func(ctx context.Context, entityType, entityID, fileName, contentType string) (string, string, error)
	UploadFileFunc           func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "eu-west-1",
	}
}

func (m *MockS3Client) GenerateFileKey(entityType, entityID, fileExt string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(entityType, entityID, fileExt)
	}

	validTypes := map[string]bool{
		"tasks":    true,
		"comments": true,
	}
	if !validTypes[entityType] {
		return "", fmt.Errorf("invalid entity type: %s", entityType)
	}

	now := time.Now()
	key := fmt.Sprintf("ciao/%s/%s/%d/%02d/%s_%d%s",
		entityType,
		entityID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		now.UnixNano(),
		fileExt,
	)

	return key, nil
}

func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, entityType, entityID, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, entityType, entityID, fileName, contentType)
	}

	fileExt := filepath.Ext(fileName)
	if fileExt == "" {
		fileExt = ".bin"
	}

	fileKey, err := m.GenerateFileKey(entityType, entityID, fileExt)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate file key: %w", err)
	}

	presignedURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Expires=300&X-Amz-Signature=mocksignature123",
		m.Bucket,
		m.Region,
		fileKey,
	)

	return presignedURL, fileKey, nil
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

var _ S3ClientInterface = (*MockS3Client)(nil)
