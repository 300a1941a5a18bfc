package dto

import (
	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateColumnRequest represents the request to append a column to a board
type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Review"`
}

// UpdateColumnRequest represents a partial column update
type UpdateColumnRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
}

// ColumnResponse represents a column with its tasks when loaded
type ColumnResponse struct {
	ID       uuid.UUID      `json:"id"`
	BoardID  uuid.UUID      `json:"boardId"`
	Title    string         `json:"title"`
	Position int            `json:"position"`
	Tasks    []TaskResponse `json:"tasks,omitempty"`
}

// ToColumnResponse converts a domain column to its response DTO
func ToColumnResponse(column *domain.Column) *ColumnResponse {
	resp := &ColumnResponse{
		ID:       column.ID,
		BoardID:  column.BoardID,
		Title:    column.Title,
		Position: column.Position,
	}
	for i := range column.Tasks {
		resp.Tasks = append(resp.Tasks, *ToTaskResponse(&column.Tasks[i]))
	}
	return resp
}
