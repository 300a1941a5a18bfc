package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether the priority is one of the known levels
func (p TaskPriority) IsValid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// Task represents a unit of work placed in exactly one column at a time
type Task struct {
	BaseModel
	ColumnID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_column_id" json:"columnId"`
	CreatorID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_creator_id" json:"creatorId"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Priority    TaskPriority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time     `gorm:"type:timestamp;index:idx_tasks_due_date" json:"dueDate,omitempty"`
	Labels      datatypes.JSON `gorm:"type:jsonb" json:"labels,omitempty"`
	Column      Column         `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"column,omitempty"`
	Assignees   []TaskAssignee `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"assignees,omitempty"`
	Comments    []Comment      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	// Attachments are a polymorphic relation, loaded separately by the repository
	Attachments []Attachment `gorm:"-" json:"attachments,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TaskAssignee links a task to an assigned user
type TaskAssignee struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TaskID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_assignees_task_id;uniqueIndex:uq_task_assignees_task_user" json:"taskId"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_assignees_user_id;uniqueIndex:uq_task_assignees_task_user" json:"userId"`
	Task   Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for TaskAssignee
func (TaskAssignee) TableName() string {
	return "task_assignees"
}
