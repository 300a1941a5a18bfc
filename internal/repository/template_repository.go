package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*domain.Template, error)
	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// templateRepositoryImpl is the GORM implementation of TemplateRepository
type templateRepositoryImpl struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new instance of TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// Create creates a new template
func (r *templateRepositoryImpl) Create(ctx context.Context, template *domain.Template) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a template by ID
func (r *templateRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	var template domain.Template
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// FindByOwner finds the templates of a user, optionally filtered by kind
func (r *templateRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*domain.Template, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	var templates []*domain.Template
	if err := query.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Update updates a template
func (r *templateRepositoryImpl) Update(ctx context.Context, template *domain.Template) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a template
func (r *templateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Template{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
