package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType represents the type of entity an attachment is associated with
type EntityType string

const (
	EntityTypeTask    EntityType = "TASK"
	EntityTypeComment EntityType = "COMMENT"
)

// AttachmentStatus represents the status of an attachment
type AttachmentStatus string

const (
	AttachmentStatusTemp      AttachmentStatus = "TEMP"
	AttachmentStatusConfirmed AttachmentStatus = "CONFIRMED"
)

// Attachment represents a file attachment on a task or comment.
// This is a polymorphic relation; EntityID has no foreign key constraint
// because it references multiple tables.
type Attachment struct {
	BaseModel
	EntityType  EntityType       `gorm:"type:varchar(50);not null;index:idx_attachments_entity,priority:1" json:"entityType"`
	EntityID    *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_entity,priority:2" json:"entityId"`
	Status      AttachmentStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_attachments_status" json:"status"`
	FileName    string           `gorm:"type:varchar(255);not null" json:"fileName"`
	FileKey     string           `gorm:"type:text;not null" json:"-"`
	FileSize    int64            `gorm:"not null" json:"fileSize"`
	ContentType string           `gorm:"type:varchar(100);not null" json:"contentType"`
	UploadedBy  uuid.UUID        `gorm:"type:uuid;not null;index:idx_attachments_uploaded_by" json:"uploadedBy"`
	ExpiresAt   *time.Time       `gorm:"type:timestamp;index:idx_attachments_expires_at" json:"expiresAt,omitempty"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
