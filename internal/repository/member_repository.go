package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ciao-api/internal/domain"
)

// BoardMemberRepository defines the interface for board membership data access
type BoardMemberRepository interface {
	// Upsert inserts the membership or updates the role when it already exists
	Upsert(ctx context.Context, member *domain.BoardMember) error
	FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	Delete(ctx context.Context, boardID, userID uuid.UUID) error
}

// boardMemberRepositoryImpl is the GORM implementation of BoardMemberRepository
type boardMemberRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardMemberRepository creates a new instance of BoardMemberRepository
func NewBoardMemberRepository(db *gorm.DB) BoardMemberRepository {
	return &boardMemberRepositoryImpl{db: db}
}

// Upsert inserts a membership, or updates the role on (board_id, user_id) conflict
func (r *boardMemberRepositoryImpl) Upsert(ctx context.Context, member *domain.BoardMember) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "board_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(member).Error; err != nil {
		return err
	}
	return nil
}

// FindByBoardAndUser finds a membership, returning nil when the user is not a member
func (r *boardMemberRepositoryImpl) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	var member domain.BoardMember
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindByBoard finds all memberships of a board
func (r *boardMemberRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	var members []*domain.BoardMember
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes a membership
func (r *boardMemberRepositoryImpl) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&domain.BoardMember{}).Error; err != nil {
		return err
	}
	return nil
}
