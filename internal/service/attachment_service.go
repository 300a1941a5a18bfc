package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/client"
	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// tempAttachmentTTL is how long an unconfirmed upload survives before cleanup
const tempAttachmentTTL = time.Hour

// AttachmentService defines the interface for attachment business logic
type AttachmentService interface {
	// GeneratePresignedURL records a TEMP attachment and returns the upload URL
	GeneratePresignedURL(ctx context.Context, userID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	DeleteAttachment(ctx context.Context, userID, attachmentID uuid.UUID) error
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(attachmentRepo repository.AttachmentRepository, s3Client client.S3ClientInterface, logger *zap.Logger) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

// GeneratePresignedURL issues a presigned PUT URL and records the pending
// attachment as TEMP. A later task or comment mutation confirms it; the
// cleanup job collects it after the TTL otherwise.
func (s *attachmentServiceImpl) GeneratePresignedURL(ctx context.Context, userID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	if s.s3Client == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Attachment storage is not configured", "")
	}
	if req.EntityType != domain.EntityTypeTask && req.EntityType != domain.EntityTypeComment {
		return nil, response.NewAppError(response.ErrCodeValidation, "Entity type must be TASK or COMMENT", "")
	}

	entityDir := "tasks"
	if req.EntityType == domain.EntityTypeComment {
		entityDir = "comments"
	}

	uploadURL, fileKey, err := s.s3Client.GeneratePresignedURL(ctx, entityDir, userID.String(), req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	expiresAt := time.Now().UTC().Add(tempAttachmentTTL)
	attachment := &domain.Attachment{
		EntityType:  req.EntityType,
		Status:      domain.AttachmentStatusTemp,
		FileName:    req.FileName,
		FileKey:     fileKey,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		UploadedBy:  userID,
		ExpiresAt:   &expiresAt,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record attachment", err.Error())
	}

	s.logger.Info("Presigned upload issued",
		zap.String("attachment_id", attachment.ID.String()),
		zap.String("file_key", fileKey),
	)

	return &dto.PresignedURLResponse{
		AttachmentID: attachment.ID,
		UploadURL:    uploadURL,
		FileKey:      fileKey,
		ExpiresAt:    expiresAt,
	}, nil
}

// DeleteAttachment removes an attachment from storage and the database.
// Only the uploader may delete it.
func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, userID, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Attachment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load attachment", err.Error())
	}
	if attachment.UploadedBy != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the uploader can delete this attachment", "")
	}

	if s.s3Client != nil {
		if err := s.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
			// Metadata removal proceeds; the object becomes unreachable either way
			s.logger.Warn("Failed to delete attachment object",
				zap.String("file_key", attachment.FileKey),
				zap.Error(err),
			)
		}
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete attachment", err.Error())
	}
	return nil
}
