package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, ownerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	boardRepo   repository.BoardRepository
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, boardRepo repository.BoardRepository, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		boardRepo:   boardRepo,
		logger:      logger,
	}
}

// CreateProject creates a project, optionally with a linked board atomically
func (s *projectServiceImpl) CreateProject(ctx context.Context, ownerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Project title cannot be empty", "")
	}

	project := &domain.Project{
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		Status:      domain.ProjectStatusActive,
		EndDate:     req.EndDate,
	}

	if req.CreateBoard {
		board := &domain.Board{
			CreatorID:   ownerID,
			Title:       title,
			Description: req.Description,
		}
		if err := s.projectRepo.CreateWithBoard(ctx, project, board); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project with board", err.Error())
		}
	} else {
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
		}
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.Bool("with_board", req.CreateBoard),
	)
	return dto.ToProjectResponse(project), nil
}

// GetProject returns a project; owner only
func (s *projectServiceImpl) GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.loadOwned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

// ListProjects returns the owner's projects, optionally filtered by status
func (s *projectServiceImpl) ListProjects(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*dto.ProjectResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid project status", "")
	}

	projects, err := s.projectRepo.FindByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = dto.ToProjectResponse(project)
	}
	return responses, nil
}

// UpdateProject applies a partial update with board title propagation
func (s *projectServiceImpl) UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	titleChanged := false
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Project title cannot be empty", "")
		}
		titleChanged = title != project.Title
		project.Title = title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid project status", "")
		}
		project.Status = *req.Status
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	if titleChanged && project.BoardID != nil {
		if err := s.boardRepo.UpdateTitle(ctx, *project.BoardID, project.Title); err != nil {
			s.logger.Warn("Failed to propagate project title to board",
				zap.String("project_id", project.ID.String()),
				zap.String("board_id", project.BoardID.String()),
				zap.Error(err),
			)
		}
	}

	return dto.ToProjectResponse(project), nil
}

// DeleteProject removes the project; the linked board survives
func (s *projectServiceImpl) DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, ownerID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	return nil
}

// loadOwned loads a project and enforces ownership (404 before 403)
func (s *projectServiceImpl) loadOwned(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	if project.OwnerID != ownerID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not own this project", "")
	}
	return project, nil
}
