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

// AssignmentService defines the interface for assignment business logic
type AssignmentService interface {
	CreateAssignment(ctx context.Context, ownerID uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID) (*dto.AssignmentResponse, error)
	ListAssignments(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*dto.AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID) error
}

// assignmentServiceImpl is the implementation of AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo repository.AssignmentRepository
	boardRepo      repository.BoardRepository
	logger         *zap.Logger
}

// NewAssignmentService creates a new instance of AssignmentService
func NewAssignmentService(assignmentRepo repository.AssignmentRepository, boardRepo repository.BoardRepository, logger *zap.Logger) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		boardRepo:      boardRepo,
		logger:         logger,
	}
}

// CreateAssignment creates an assignment, optionally with a linked board in the
// same transaction. Either both records exist or neither does.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, ownerID uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Assignment title cannot be empty", "")
	}

	assignment := &domain.Assignment{
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		Status:      domain.AssignmentStatusPending,
		DueDate:     req.DueDate,
	}

	if req.CreateBoard {
		board := &domain.Board{
			CreatorID:   ownerID,
			Title:       title,
			Description: req.Description,
		}
		if err := s.assignmentRepo.CreateWithBoard(ctx, assignment, board); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create assignment with board", err.Error())
		}
	} else {
		if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create assignment", err.Error())
		}
	}

	s.logger.Info("Assignment created",
		zap.String("assignment_id", assignment.ID.String()),
		zap.Bool("with_board", req.CreateBoard),
	)
	return dto.ToAssignmentResponse(assignment), nil
}

// GetAssignment returns an assignment; owner only
func (s *assignmentServiceImpl) GetAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID) (*dto.AssignmentResponse, error) {
	assignment, err := s.loadOwned(ctx, ownerID, assignmentID)
	if err != nil {
		return nil, err
	}
	return dto.ToAssignmentResponse(assignment), nil
}

// ListAssignments returns the owner's assignments, optionally filtered by status
func (s *assignmentServiceImpl) ListAssignments(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*dto.AssignmentResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid assignment status", "")
	}

	assignments, err := s.assignmentRepo.FindByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list assignments", err.Error())
	}

	responses := make([]*dto.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = dto.ToAssignmentResponse(assignment)
	}
	return responses, nil
}

// UpdateAssignment applies a partial update. A title change propagates to the
// linked board as a secondary effect; that failure only logs.
func (s *assignmentServiceImpl) UpdateAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.loadOwned(ctx, ownerID, assignmentID)
	if err != nil {
		return nil, err
	}

	titleChanged := false
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Assignment title cannot be empty", "")
		}
		titleChanged = title != assignment.Title
		assignment.Title = title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid assignment status", "")
		}
		assignment.Status = *req.Status
	}
	if req.DueDate != nil {
		assignment.DueDate = req.DueDate
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update assignment", err.Error())
	}

	if titleChanged && assignment.BoardID != nil {
		if err := s.boardRepo.UpdateTitle(ctx, *assignment.BoardID, assignment.Title); err != nil {
			s.logger.Warn("Failed to propagate assignment title to board",
				zap.String("assignment_id", assignment.ID.String()),
				zap.String("board_id", assignment.BoardID.String()),
				zap.Error(err),
			)
		}
	}

	return dto.ToAssignmentResponse(assignment), nil
}

// DeleteAssignment removes the assignment; the linked board survives
func (s *assignmentServiceImpl) DeleteAssignment(ctx context.Context, ownerID, assignmentID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, ownerID, assignmentID); err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete assignment", err.Error())
	}
	return nil
}

// loadOwned loads an assignment and enforces ownership (404 before 403)
func (s *assignmentServiceImpl) loadOwned(ctx context.Context, ownerID, assignmentID uuid.UUID) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Assignment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load assignment", err.Error())
	}
	if assignment.OwnerID != ownerID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not own this assignment", "")
	}
	return assignment, nil
}
