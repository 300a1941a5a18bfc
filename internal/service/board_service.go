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
	"ciao-api/internal/metrics"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	ListBoards(ctx context.Context, userID uuid.UUID) ([]*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	access    AccessService
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(boardRepo repository.BoardRepository, access AccessService, logger *zap.Logger, m *metrics.Metrics) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		access:    access,
		logger:    logger,
		metrics:   m,
	}
}

// CreateBoard creates a board seeded with the default columns and the
// creator's admin membership in one transaction
func (s *boardServiceImpl) CreateBoard(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Board title cannot be empty", "")
	}

	board := &domain.Board{
		CreatorID:   ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}

	if err := s.boardRepo.CreateWithDefaults(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("creator_id", ownerID.String()),
	)

	return dto.ToBoardResponse(board), nil
}

// GetBoard returns the full board detail for any member
func (s *boardServiceImpl) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if err := s.access.CanAccess(ctx, userID, boardID); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindByIDWithDetail(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	return dto.ToBoardResponse(board), nil
}

// ListBoards returns the boards the user created or was invited to
func (s *boardServiceImpl) ListBoards(ctx context.Context, userID uuid.UUID) ([]*dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAccessibleByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = dto.ToBoardResponse(board)
	}
	return responses, nil
}

// UpdateBoard updates title and description; creator or admin only
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	role, err := s.access.ResolveRole(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}
	if role != domain.BoardRoleAdmin {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the creator or an admin can update the board", "")
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Board title cannot be empty", "")
		}
		board.Title = title
	}
	if req.Description != nil {
		board.Description = *req.Description
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	return dto.ToBoardResponse(board), nil
}

// DeleteBoard deletes a board and every row under it; creator only
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	isCreator, err := s.access.IsCreator(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if !isCreator {
		return response.NewAppError(response.ErrCodeForbidden, "Only the board creator can delete a board", "")
	}

	if err := s.boardRepo.DeleteCascade(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}
