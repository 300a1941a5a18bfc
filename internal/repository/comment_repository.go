package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	// DeleteWithReplies deletes a comment and its direct replies in one transaction
	DeleteWithReplies(ctx context.Context, id uuid.UUID) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByTask finds the top-level comments of a task with replies preloaded
func (r *commentRepositoryImpl) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("task_id = ? AND parent_id IS NULL", taskID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return err
	}
	return nil
}

// DeleteWithReplies deletes a comment, its replies and their attachment rows in one transaction
func (r *commentRepositoryImpl) DeleteWithReplies(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		replyIDs := tx.Model(&domain.Comment{}).Select("id").Where("parent_id = ?", id)

		if err := tx.Where("entity_type = ? AND entity_id IN (?)", domain.EntityTypeComment, replyIDs).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", domain.EntityTypeComment, id).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_id = ?", id).
			Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Comment{}).Error
	})
}
