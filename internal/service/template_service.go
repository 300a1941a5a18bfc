package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// TemplateService defines the interface for template business logic
type TemplateService interface {
	CreateTemplate(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	GetTemplate(ctx context.Context, ownerID, templateID uuid.UUID) (*dto.TemplateResponse, error)
	ListTemplates(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, ownerID, templateID uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, ownerID, templateID uuid.UUID) error
}

// templateServiceImpl is the implementation of TemplateService
type templateServiceImpl struct {
	templateRepo repository.TemplateRepository
	logger       *zap.Logger
}

// NewTemplateService creates a new instance of TemplateService
func NewTemplateService(templateRepo repository.TemplateRepository, logger *zap.Logger) TemplateService {
	return &templateServiceImpl{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// CreateTemplate saves a reusable assignment or project template
func (s *templateServiceImpl) CreateTemplate(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Template name cannot be empty", "")
	}
	if !req.Kind.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Template kind must be assignment or project", "")
	}

	fields, err := marshalFields(req.Fields)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid template fields", err.Error())
	}

	template := &domain.Template{
		OwnerID: ownerID,
		Name:    name,
		Kind:    req.Kind,
		Fields:  fields,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create template", err.Error())
	}

	return dto.ToTemplateResponse(template), nil
}

// GetTemplate returns a template; owner only
func (s *templateServiceImpl) GetTemplate(ctx context.Context, ownerID, templateID uuid.UUID) (*dto.TemplateResponse, error) {
	template, err := s.loadOwned(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	return dto.ToTemplateResponse(template), nil
}

// ListTemplates returns the owner's templates, optionally filtered by kind
func (s *templateServiceImpl) ListTemplates(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*dto.TemplateResponse, error) {
	if kind != nil && !kind.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid template kind", "")
	}

	templates, err := s.templateRepo.FindByOwner(ctx, ownerID, kind)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list templates", err.Error())
	}

	responses := make([]*dto.TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = dto.ToTemplateResponse(template)
	}
	return responses, nil
}

// UpdateTemplate applies a partial update
func (s *templateServiceImpl) UpdateTemplate(ctx context.Context, ownerID, templateID uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := s.loadOwned(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Template name cannot be empty", "")
		}
		template.Name = name
	}
	if req.Fields != nil {
		fields, err := marshalFields(req.Fields)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid template fields", err.Error())
		}
		template.Fields = fields
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update template", err.Error())
	}
	return dto.ToTemplateResponse(template), nil
}

// DeleteTemplate removes a template
func (s *templateServiceImpl) DeleteTemplate(ctx context.Context, ownerID, templateID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, ownerID, templateID); err != nil {
		return err
	}

	if err := s.templateRepo.Delete(ctx, templateID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete template", err.Error())
	}
	return nil
}

// loadOwned loads a template and enforces ownership (404 before 403)
func (s *templateServiceImpl) loadOwned(ctx context.Context, ownerID, templateID uuid.UUID) (*domain.Template, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Template not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load template", err.Error())
	}
	if template.OwnerID != ownerID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not own this template", "")
	}
	return template, nil
}

// marshalFields encodes the free-form field map as a JSON column value
func marshalFields(fields map[string]interface{}) (datatypes.JSON, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
