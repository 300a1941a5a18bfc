package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateAssignmentRequest represents the request to create an assignment.
// With createBoard the assignment and a seeded board are created atomically.
type CreateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255" example:"Algorithms homework 3"`
	Description string     `json:"description" binding:"max=5000"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreateBoard bool       `json:"createBoard"`
}

// UpdateAssignmentRequest represents a partial assignment update
type UpdateAssignmentRequest struct {
	Title       *string                  `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string                  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Status      *domain.AssignmentStatus `json:"status,omitempty"`
	DueDate     *time.Time               `json:"dueDate,omitempty"`
}

// AssignmentResponse represents an assignment
type AssignmentResponse struct {
	ID          uuid.UUID               `json:"id"`
	OwnerID     uuid.UUID               `json:"ownerId"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Status      domain.AssignmentStatus `json:"status"`
	DueDate     *time.Time              `json:"dueDate,omitempty"`
	BoardID     *uuid.UUID              `json:"boardId,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// ToAssignmentResponse converts a domain assignment to its response DTO
func ToAssignmentResponse(assignment *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          assignment.ID,
		OwnerID:     assignment.OwnerID,
		Title:       assignment.Title,
		Description: assignment.Description,
		Status:      assignment.Status,
		DueDate:     assignment.DueDate,
		BoardID:     assignment.BoardID,
		CreatedAt:   assignment.CreatedAt,
		UpdatedAt:   assignment.UpdatedAt,
	}
}
