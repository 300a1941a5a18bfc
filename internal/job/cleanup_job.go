package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ciao-api/internal/client"
	"ciao-api/internal/repository"
)

// CleanupJob removes temporary attachments whose upload window has lapsed
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	logger         *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	attachmentRepo repository.AttachmentRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

// Run finds expired TEMP attachments, deletes their objects from S3 and then
// removes the metadata rows. Rows whose object deletion failed are kept so a
// later run can retry them.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cleanup job for expired temporary attachments")

	expired, err := j.attachmentRepo.FindExpiredTemp(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Error("Failed to find expired temporary attachments", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		j.logger.Info("No expired temporary attachments found")
		return
	}

	var deletedIDs []uuid.UUID
	failCount := 0

	for _, attachment := range expired {
		if err := j.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
			j.logger.Error("Failed to delete file from S3",
				zap.String("attachment_id", attachment.ID.String()),
				zap.String("file_key", attachment.FileKey),
				zap.Error(err),
			)
			failCount++
			continue
		}
		deletedIDs = append(deletedIDs, attachment.ID)
	}

	if len(deletedIDs) > 0 {
		if err := j.attachmentRepo.DeleteBatch(ctx, deletedIDs); err != nil {
			j.logger.Error("Failed to delete attachment rows",
				zap.Int("count", len(deletedIDs)),
				zap.Error(err),
			)
		}
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deletedIDs)),
		zap.Int("failed", failCount),
	)
}
