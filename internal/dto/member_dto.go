package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// UpsertMemberRequest represents adding a member by email or changing their role
// @Description Adding a user who is already a member updates the role in place
type UpsertMemberRequest struct {
	Email string           `json:"email" binding:"required,email" example:"luigi@example.com"`
	Role  domain.BoardRole `json:"role" binding:"required" example:"editor"`
}

// MemberResponse represents a board membership
type MemberResponse struct {
	ID       uuid.UUID        `json:"id"`
	BoardID  uuid.UUID        `json:"boardId"`
	UserID   uuid.UUID        `json:"userId"`
	Role     domain.BoardRole `json:"role"`
	JoinedAt time.Time        `json:"joinedAt"`
}

// ToMemberResponse converts a domain membership to its response DTO
func ToMemberResponse(member *domain.BoardMember) *MemberResponse {
	return &MemberResponse{
		ID:       member.ID,
		BoardID:  member.BoardID,
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}
