package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	Update(ctx context.Context, column *domain.Column) error
	MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error)
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// columnRepositoryImpl is the GORM implementation of ColumnRepository
type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

// Create creates a new column
func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.Column) error {
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a column by ID
func (r *columnRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	var column domain.Column
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// FindByBoard finds all columns of a board ordered by position
func (r *columnRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	var columns []*domain.Column
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Update updates a column
func (r *columnRepositoryImpl) Update(ctx context.Context, column *domain.Column) error {
	if err := r.db.WithContext(ctx).Save(column).Error; err != nil {
		return err
	}
	return nil
}

// MaxPosition returns the highest column position on a board, -1 when the board has no columns
func (r *columnRepositoryImpl) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&domain.Column{}).
		Where("board_id = ?", boardID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// CountByBoard counts the columns of a board
func (r *columnRepositoryImpl) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Column{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCascade deletes a column and all tasks under it in one transaction
func (r *columnRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&domain.Task{}).Select("id").Where("column_id = ?", id)
		commentIDs := tx.Model(&domain.Comment{}).Select("id").Where("task_id IN (?)", taskIDs)

		if err := tx.Where("entity_type = ? AND entity_id IN (?)", domain.EntityTypeComment, commentIDs).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id IN (?)", domain.EntityTypeTask, taskIDs).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN (?)", taskIDs).
			Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN (?)", taskIDs).
			Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("column_id = ?", id).
			Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Column{}).Error
	})
}
