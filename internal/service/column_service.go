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

// ColumnService defines the interface for column business logic
type ColumnService interface {
	CreateColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	ListColumns(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ColumnResponse, error)
	UpdateColumn(ctx context.Context, userID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	DeleteColumn(ctx context.Context, userID, columnID uuid.UUID) error
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	columnRepo repository.ColumnRepository
	access     AccessService
	logger     *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(columnRepo repository.ColumnRepository, access AccessService, logger *zap.Logger) ColumnService {
	return &columnServiceImpl{
		columnRepo: columnRepo,
		access:     access,
		logger:     logger,
	}
}

// CreateColumn appends a column at the rightmost position
func (s *columnServiceImpl) CreateColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	if err := s.access.CanEdit(ctx, userID, boardID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Column title cannot be empty", "")
	}

	maxPos, err := s.columnRepo.MaxPosition(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine column position", err.Error())
	}

	column := &domain.Column{
		BoardID:  boardID,
		Title:    title,
		Position: maxPos + 1,
	}
	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create column", err.Error())
	}

	return dto.ToColumnResponse(column), nil
}

// ListColumns returns the board's columns left to right
func (s *columnServiceImpl) ListColumns(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ColumnResponse, error) {
	if err := s.access.CanAccess(ctx, userID, boardID); err != nil {
		return nil, err
	}

	columns, err := s.columnRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list columns", err.Error())
	}

	responses := make([]*dto.ColumnResponse, len(columns))
	for i, column := range columns {
		responses[i] = dto.ToColumnResponse(column)
	}
	return responses, nil
}

// UpdateColumn renames a column
func (s *columnServiceImpl) UpdateColumn(ctx context.Context, userID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}

	if err := s.access.CanEdit(ctx, userID, column.BoardID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Column title cannot be empty", "")
		}
		column.Title = title
	}

	if err := s.columnRepo.Update(ctx, column); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update column", err.Error())
	}
	return dto.ToColumnResponse(column), nil
}

// DeleteColumn deletes a column and cascades its tasks
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, userID, columnID uuid.UUID) error {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}

	if err := s.access.CanEdit(ctx, userID, column.BoardID); err != nil {
		return err
	}

	if err := s.columnRepo.DeleteCascade(ctx, columnID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete column", err.Error())
	}

	s.logger.Info("Column deleted",
		zap.String("column_id", columnID.String()),
		zap.String("board_id", column.BoardID.String()),
	)
	return nil
}
