package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateCommentRequest represents the request to add a comment to a task.
// ParentID, when set, must reference a top-level comment on the same task.
type CreateCommentRequest struct {
	Content       string      `json:"content" binding:"required,min=1,max=5000"`
	ParentID      *uuid.UUID  `json:"parentId,omitempty"`
	AttachmentIDs []uuid.UUID `json:"attachmentIds,omitempty" binding:"max=20"`
}

// CommentResponse represents a comment with its direct replies
type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	TaskID    uuid.UUID         `json:"taskId"`
	AuthorID  uuid.UUID         `json:"authorId"`
	ParentID  *uuid.UUID        `json:"parentId,omitempty"`
	Content   string            `json:"content"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ToCommentResponse converts a domain comment to its response DTO
func ToCommentResponse(comment *domain.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	for i := range comment.Replies {
		resp.Replies = append(resp.Replies, *ToCommentResponse(&comment.Replies[i]))
	}
	return resp
}
