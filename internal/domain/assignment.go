package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus represents the progress of an academic assignment
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// IsValid reports whether the status is one of the known assignment states
func (s AssignmentStatus) IsValid() bool {
	return s == AssignmentStatusPending || s == AssignmentStatusInProgress || s == AssignmentStatusCompleted
}

// Assignment represents an academic work item, optionally backed by a generated board.
// The board link is soft: deleting the board nulls BoardID, deleting the assignment
// leaves the board in place.
type Assignment struct {
	BaseModel
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_assignments_owner_id" json:"ownerId"`
	Title       string           `gorm:"type:varchar(255);not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Status      AssignmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate     *time.Time       `gorm:"type:timestamp;index:idx_assignments_due_date" json:"dueDate,omitempty"`
	BoardID     *uuid.UUID       `gorm:"type:uuid;index:idx_assignments_board_id" json:"boardId,omitempty"`
}

// TableName specifies the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
