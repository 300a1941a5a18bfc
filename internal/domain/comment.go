package domain

import "github.com/google/uuid"

// Comment represents a comment on a task, with one level of threaded replies
type Comment struct {
	BaseModel
	TaskID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_task_id" json:"taskId"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"authorId"`
	ParentID *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_id" json:"parentId,omitempty"`
	Content  string     `gorm:"type:text;not null" json:"content"`
	Task     Task       `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
	Replies  []Comment  `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
