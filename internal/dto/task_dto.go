package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateTaskRequest represents the request to create a task in a column
type CreateTaskRequest struct {
	Title         string               `json:"title" binding:"required,min=1,max=255" example:"Write introduction"`
	Description   string               `json:"description" binding:"max=5000"`
	Priority      *domain.TaskPriority `json:"priority,omitempty"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	Labels        []string             `json:"labels,omitempty" binding:"max=20"`
	AssigneeIDs   []uuid.UUID          `json:"assigneeIds,omitempty" binding:"max=50"`
	AttachmentIDs []uuid.UUID          `json:"attachmentIds,omitempty" binding:"max=20"`
}

// UpdateTaskRequest represents a partial task update.
// A non-nil AssigneeIDs (even empty) replaces the whole assignee set.
type UpdateTaskRequest struct {
	Title         *string              `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description   *string              `json:"description,omitempty" binding:"omitempty,max=5000"`
	Priority      *domain.TaskPriority `json:"priority,omitempty"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	ClearDueDate  bool                 `json:"clearDueDate,omitempty"`
	Labels        []string             `json:"labels,omitempty" binding:"max=20"`
	AssigneeIDs   []uuid.UUID          `json:"assigneeIds,omitempty" binding:"max=50"`
	AttachmentIDs []uuid.UUID          `json:"attachmentIds,omitempty" binding:"max=20"`
}

// MoveTaskRequest represents moving a task to another column on the same board
type MoveTaskRequest struct {
	ColumnID uuid.UUID `json:"columnId" binding:"required"`
}

// TaskResponse represents a task with its assignees
type TaskResponse struct {
	ID          uuid.UUID            `json:"id"`
	ColumnID    uuid.UUID            `json:"columnId"`
	CreatorID   uuid.UUID            `json:"creatorId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Priority    domain.TaskPriority  `json:"priority"`
	DueDate     *time.Time           `json:"dueDate,omitempty"`
	Labels      []string             `json:"labels"`
	AssigneeIDs []uuid.UUID          `json:"assigneeIds"`
	Comments    []CommentResponse    `json:"comments,omitempty"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToTaskResponse converts a domain task to its response DTO
func ToTaskResponse(task *domain.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          task.ID,
		ColumnID:    task.ColumnID,
		CreatorID:   task.CreatorID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Labels:      []string{},
		AssigneeIDs: make([]uuid.UUID, 0, len(task.Assignees)),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if len(task.Labels) > 0 {
		var labels []string
		if err := json.Unmarshal(task.Labels, &labels); err == nil {
			resp.Labels = labels
		}
	}
	for _, a := range task.Assignees {
		resp.AssigneeIDs = append(resp.AssigneeIDs, a.UserID)
	}
	for i := range task.Comments {
		resp.Comments = append(resp.Comments, *ToCommentResponse(&task.Comments[i]))
	}
	for i := range task.Attachments {
		resp.Attachments = append(resp.Attachments, *ToAttachmentResponse(&task.Attachments[i]))
	}
	return resp
}
