package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// UserService defines the interface for profile operations
type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	// DeleteMe removes the account and everything the user owns
	DeleteMe(ctx context.Context, userID uuid.UUID) error
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo       repository.UserRepository
	tokenRepo      repository.VerificationTokenRepository
	boardRepo      repository.BoardRepository
	assignmentRepo repository.AssignmentRepository
	projectRepo    repository.ProjectRepository
	templateRepo   repository.TemplateRepository
	logger         *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.VerificationTokenRepository,
	boardRepo repository.BoardRepository,
	assignmentRepo repository.AssignmentRepository,
	projectRepo repository.ProjectRepository,
	templateRepo repository.TemplateRepository,
	logger *zap.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		boardRepo:      boardRepo,
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		templateRepo:   templateRepo,
		logger:         logger,
	}
}

// GetMe returns the authenticated user's profile
func (s *userServiceImpl) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateMe updates name and role
func (s *userServiceImpl) UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Name cannot be empty", "")
		}
		user.Name = name
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Role must be student or freelancer", "")
		}
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteMe removes the account with its boards, assignments, projects and
// templates. Boards go through the full cascade so no orphan rows remain.
func (s *userServiceImpl) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	boards, err := s.boardRepo.FindByCreator(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to list owned boards", err.Error())
	}
	for _, board := range boards {
		if err := s.boardRepo.DeleteCascade(ctx, board.ID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to delete owned board", err.Error())
		}
	}

	assignments, err := s.assignmentRepo.FindByOwner(ctx, userID, nil)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to list assignments", err.Error())
	}
	for _, assignment := range assignments {
		if err := s.assignmentRepo.Delete(ctx, assignment.ID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to delete assignment", err.Error())
		}
	}

	projects, err := s.projectRepo.FindByOwner(ctx, userID, nil)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}
	for _, project := range projects {
		if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
		}
	}

	templates, err := s.templateRepo.FindByOwner(ctx, userID, nil)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to list templates", err.Error())
	}
	for _, template := range templates {
		if err := s.templateRepo.Delete(ctx, template.ID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to delete template", err.Error())
		}
	}

	if err := s.tokenRepo.DeleteByEmail(ctx, user.Email); err != nil {
		s.logger.Warn("Failed to delete verification tokens", zap.Error(err))
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user", err.Error())
	}

	s.logger.Info("User account deleted", zap.String("user_id", userID.String()))
	return nil
}
