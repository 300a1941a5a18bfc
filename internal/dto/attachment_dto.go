package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// PresignedURLRequest represents the request for a presigned upload URL.
// The attachment row is created in TEMP status and must be confirmed by a
// subsequent task or comment mutation before the expiry.
type PresignedURLRequest struct {
	EntityType  domain.EntityType `json:"entityType" binding:"required" example:"TASK"`
	FileName    string            `json:"fileName" binding:"required,min=1,max=255" example:"notes.pdf"`
	ContentType string            `json:"contentType" binding:"required" example:"application/pdf"`
	FileSize    int64             `json:"fileSize" binding:"required,min=1,max=52428800"`
}

// PresignedURLResponse carries the upload URL and the pending attachment
type PresignedURLResponse struct {
	AttachmentID uuid.UUID `json:"attachmentId"`
	UploadURL    string    `json:"uploadUrl"`
	FileKey      string    `json:"fileKey"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AttachmentResponse represents attachment metadata
type AttachmentResponse struct {
	ID          uuid.UUID               `json:"id"`
	EntityType  domain.EntityType       `json:"entityType"`
	EntityID    *uuid.UUID              `json:"entityId,omitempty"`
	Status      domain.AttachmentStatus `json:"status"`
	FileName    string                  `json:"fileName"`
	FileURL     string                  `json:"fileUrl,omitempty"`
	FileSize    int64                   `json:"fileSize"`
	ContentType string                  `json:"contentType"`
	UploadedBy  uuid.UUID               `json:"uploadedBy"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// ToAttachmentResponse converts a domain attachment to its response DTO.
// FileURL is filled by the service layer, which owns the storage client.
func ToAttachmentResponse(attachment *domain.Attachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:          attachment.ID,
		EntityType:  attachment.EntityType,
		EntityID:    attachment.EntityID,
		Status:      attachment.Status,
		FileName:    attachment.FileName,
		FileSize:    attachment.FileSize,
		ContentType: attachment.ContentType,
		UploadedBy:  attachment.UploadedBy,
		CreatedAt:   attachment.CreatedAt,
	}
}
