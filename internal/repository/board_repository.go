package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// CreateWithDefaults creates the board and its default columns in one transaction
	CreateWithDefaults(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithDetail(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error)
	FindAccessibleByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// CreateWithDefaults creates a board together with its default columns and the
// creator's admin membership. Either everything is committed or nothing is.
func (r *boardRepositoryImpl) CreateWithDefaults(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createBoardWithDefaults(tx, board)
	})
}

// createBoardWithDefaults seeds a board inside an existing transaction.
// Shared with the assignment and project repositories.
func createBoardWithDefaults(tx *gorm.DB, board *domain.Board) error {
	if err := tx.Create(board).Error; err != nil {
		return err
	}

	columns := make([]*domain.Column, 0, len(domain.DefaultColumnTitles))
	for i, title := range domain.DefaultColumnTitles {
		columns = append(columns, &domain.Column{
			BoardID:  board.ID,
			Title:    title,
			Position: i,
		})
	}
	if err := tx.Create(&columns).Error; err != nil {
		return err
	}

	member := &domain.BoardMember{
		BoardID:  board.ID,
		UserID:   board.CreatorID,
		Role:     domain.BoardRoleAdmin,
		JoinedAt: time.Now().UTC(),
	}
	if err := tx.Create(member).Error; err != nil {
		return err
	}

	board.Columns = make([]domain.Column, 0, len(columns))
	for _, col := range columns {
		board.Columns = append(board.Columns, *col)
	}
	board.Members = []domain.BoardMember{*member}
	return nil
}

// FindByID finds a board by ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithDetail finds a board with columns, tasks, assignees and members
func (r *boardRepositoryImpl) FindByIDWithDetail(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Columns.Tasks.Assignees").
		Preload("Members").
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByCreator finds all boards created by a user
func (r *boardRepositoryImpl) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindAccessibleByUser finds all boards the user created or is a member of
func (r *boardRepositoryImpl) FindAccessibleByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	memberBoardIDs := r.db.Model(&domain.BoardMember{}).
		Select("board_id").
		Where("user_id = ?", userID)

	if err := r.db.WithContext(ctx).
		Where("creator_id = ? OR id IN (?)", userID, memberBoardIDs).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return err
	}
	return nil
}

// UpdateTitle updates only the board title
func (r *boardRepositoryImpl) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ?", id).
		Update("title", title).Error; err != nil {
		return err
	}
	return nil
}

// DeleteCascade deletes a board and everything under it in one transaction.
// Children go first so no orphaned rows survive a partial failure:
// attachments, comments, assignees, tasks, columns, members, then the board.
func (r *boardRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		columnIDs := tx.Model(&domain.Column{}).Select("id").Where("board_id = ?", id)
		taskIDs := tx.Model(&domain.Task{}).Select("id").
			Where("column_id IN (?)", tx.Model(&domain.Column{}).Select("id").Where("board_id = ?", id))
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
		if err := tx.Where("column_id IN (?)", columnIDs).
			Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&domain.Column{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Assignment{}).
			Where("board_id = ?", id).
			Update("board_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Project{}).
			Where("board_id = ?", id).
			Update("board_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Board{}).Error
	})
}
