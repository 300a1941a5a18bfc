package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255" example:"Client site redesign"`
	Description string     `json:"description" binding:"max=5000"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreateBoard bool       `json:"createBoard"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Title       *string               `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string               `json:"description,omitempty" binding:"omitempty,max=5000"`
	Status      *domain.ProjectStatus `json:"status,omitempty"`
	EndDate     *time.Time            `json:"endDate,omitempty"`
}

// ProjectResponse represents a project
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	OwnerID     uuid.UUID            `json:"ownerId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      domain.ProjectStatus `json:"status"`
	EndDate     *time.Time           `json:"endDate,omitempty"`
	BoardID     *uuid.UUID           `json:"boardId,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToProjectResponse converts a domain project to its response DTO
func ToProjectResponse(project *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		EndDate:     project.EndDate,
		BoardID:     project.BoardID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
