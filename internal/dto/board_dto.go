package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateBoardRequest represents the request to create a board
// @Description The new board is seeded with the three default columns
// @Description and an admin membership for the creator
type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"Thesis work"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateBoardRequest represents a partial board update
type UpdateBoardRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// BoardResponse represents a board with optional nested detail
type BoardResponse struct {
	ID          uuid.UUID        `json:"id"`
	CreatorID   uuid.UUID        `json:"creatorId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Columns     []ColumnResponse `json:"columns,omitempty"`
	Members     []MemberResponse `json:"members,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ToBoardResponse converts a domain board without nested detail
func ToBoardResponse(board *domain.Board) *BoardResponse {
	resp := &BoardResponse{
		ID:          board.ID,
		CreatorID:   board.CreatorID,
		Title:       board.Title,
		Description: board.Description,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}

	for i := range board.Columns {
		resp.Columns = append(resp.Columns, *ToColumnResponse(&board.Columns[i]))
	}
	for i := range board.Members {
		resp.Members = append(resp.Members, *ToMemberResponse(&board.Members[i]))
	}
	return resp
}
