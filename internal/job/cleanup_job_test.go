package job

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"ciao-api/internal/domain"
)

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.Attachment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Confirm(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	args := m.Called(ctx, attachmentIDs, entityType, entityID)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteBatch(ctx context.Context, attachmentIDs []uuid.UUID) error {
	args := m.Called(ctx, attachmentIDs)
	return args.Error(0)
}

// MockS3Client is a mock implementation of S3ClientInterface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GenerateFileKey(entityType, entityID, fileExt string) (string, error) {
	args := m.Called(entityType, entityID, fileExt)
	return args.String(0), args.Error(1)
}

func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, entityType, entityID, fileName, contentType string) (string, string, error) {
	args := m.Called(ctx, entityType, entityID, fileName, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockS3Client) GetFileURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func makeExpiredAttachment(fileKey string) *domain.Attachment {
	expiredAt := time.Now().Add(-2 * time.Hour)
	return &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.EntityTypeTask,
		Status:      domain.AttachmentStatusTemp,
		FileName:    "upload.pdf",
		FileKey:     fileKey,
		FileSize:    2048,
		ContentType: "application/pdf",
		UploadedBy:  uuid.New(),
		ExpiresAt:   &expiredAt,
	}
}

func TestCleanupJob_Run_ExpiredFilesDeleted(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	mockS3 := new(MockS3Client)

	job := NewCleanupJob(mockRepo, mockS3, zap.NewNop())

	attachment1 := makeExpiredAttachment("tasks/2026/08/file1.pdf")
	attachment2 := makeExpiredAttachment("comments/2026/08/file2.png")
	expired := []*domain.Attachment{attachment1, attachment2}

	mockRepo.On("FindExpiredTemp", mock.Anything, mock.Anything).Return(expired, nil)
	mockS3.On("DeleteFile", mock.Anything, attachment1.FileKey).Return(nil)
	mockS3.On("DeleteFile", mock.Anything, attachment2.FileKey).Return(nil)
	mockRepo.On("DeleteBatch", mock.Anything, []uuid.UUID{attachment1.ID, attachment2.ID}).Return(nil)

	job.Run()

	mockRepo.AssertExpectations(t)
	mockS3.AssertExpectations(t)
}

func TestCleanupJob_Run_NoExpiredFiles(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	mockS3 := new(MockS3Client)

	job := NewCleanupJob(mockRepo, mockS3, zap.NewNop())

	mockRepo.On("FindExpiredTemp", mock.Anything, mock.Anything).Return([]*domain.Attachment{}, nil)

	job.Run()

	mockRepo.AssertExpectations(t)
	mockS3.AssertNotCalled(t, "DeleteFile")
	mockRepo.AssertNotCalled(t, "DeleteBatch")
}

func TestCleanupJob_Run_S3DeleteFailureKeepsRow(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	mockS3 := new(MockS3Client)

	job := NewCleanupJob(mockRepo, mockS3, zap.NewNop())

	attachment1 := makeExpiredAttachment("tasks/2026/08/file1.pdf")
	attachment2 := makeExpiredAttachment("comments/2026/08/file2.png")
	expired := []*domain.Attachment{attachment1, attachment2}

	mockRepo.On("FindExpiredTemp", mock.Anything, mock.Anything).Return(expired, nil)
	mockS3.On("DeleteFile", mock.Anything, attachment1.FileKey).Return(errors.New("s3 error"))
	mockS3.On("DeleteFile", mock.Anything, attachment2.FileKey).Return(nil)

	// Only the row whose object is gone may be removed; the failed one stays
	// for the next run
	mockRepo.On("DeleteBatch", mock.Anything, []uuid.UUID{attachment2.ID}).Return(nil)

	job.Run()

	mockRepo.AssertExpectations(t)
	mockS3.AssertExpectations(t)
}

func TestCleanupJob_Run_FindError(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	mockS3 := new(MockS3Client)

	job := NewCleanupJob(mockRepo, mockS3, zap.NewNop())

	mockRepo.On("FindExpiredTemp", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	job.Run()

	mockRepo.AssertExpectations(t)
	mockS3.AssertNotCalled(t, "DeleteFile")
	mockRepo.AssertNotCalled(t, "DeleteBatch")
}
