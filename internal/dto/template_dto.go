package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// CreateTemplateRequest represents the request to save a reusable template
type CreateTemplateRequest struct {
	Name   string                 `json:"name" binding:"required,min=1,max=255" example:"Weekly essay"`
	Kind   domain.TemplateKind    `json:"kind" binding:"required" example:"assignment"`
	Fields map[string]interface{} `json:"fields" binding:"required"`
}

// UpdateTemplateRequest represents a partial template update
type UpdateTemplateRequest struct {
	Name   *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// TemplateResponse represents a saved template
type TemplateResponse struct {
	ID        uuid.UUID              `json:"id"`
	OwnerID   uuid.UUID              `json:"ownerId"`
	Name      string                 `json:"name"`
	Kind      domain.TemplateKind    `json:"kind"`
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ToTemplateResponse converts a domain template to its response DTO
func ToTemplateResponse(template *domain.Template) *TemplateResponse {
	resp := &TemplateResponse{
		ID:        template.ID,
		OwnerID:   template.OwnerID,
		Name:      template.Name,
		Kind:      template.Kind,
		Fields:    map[string]interface{}{},
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
	if len(template.Fields) > 0 {
		var fields map[string]interface{}
		if err := json.Unmarshal(template.Fields, &fields); err == nil {
			resp.Fields = fields
		}
	}
	return resp
}
