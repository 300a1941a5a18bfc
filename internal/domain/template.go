package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TemplateKind represents which entity a template prefills
type TemplateKind string

const (
	TemplateKindAssignment TemplateKind = "assignment"
	TemplateKindProject    TemplateKind = "project"
)

// IsValid reports whether the kind is one of the known template kinds
func (k TemplateKind) IsValid() bool {
	return k == TemplateKindAssignment || k == TemplateKindProject
}

// Template is an owner-scoped preset of assignment/project fields
type Template struct {
	BaseModel
	OwnerID uuid.UUID      `gorm:"type:uuid;not null;index:idx_templates_owner_id" json:"ownerId"`
	Name    string         `gorm:"type:varchar(255);not null" json:"name"`
	Kind    TemplateKind   `gorm:"type:varchar(20);not null" json:"kind"`
	Fields  datatypes.JSON `gorm:"type:jsonb" json:"fields,omitempty"`
}

// TableName specifies the table name for Template
func (Template) TableName() string {
	return "templates"
}
