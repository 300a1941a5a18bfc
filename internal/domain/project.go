package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the progress of a freelance project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// IsValid reports whether the status is one of the known project states
func (s ProjectStatus) IsValid() bool {
	return s == ProjectStatusActive || s == ProjectStatusOnHold || s == ProjectStatusCompleted
}

// Project represents a freelance work item, optionally backed by a generated board
type Project struct {
	BaseModel
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"ownerId"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	EndDate     *time.Time    `gorm:"type:timestamp;index:idx_projects_end_date" json:"endDate,omitempty"`
	BoardID     *uuid.UUID    `gorm:"type:uuid;index:idx_projects_board_id" json:"boardId,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
