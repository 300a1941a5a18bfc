package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	// CreateWithBoard creates the assignment and its linked board atomically
	CreateWithBoard(ctx context.Context, assignment *domain.Assignment, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	// FindByBoardID finds the assignment linked to a board, nil when none
	FindByBoardID(ctx context.Context, boardID uuid.UUID) (*domain.Assignment, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*domain.Assignment, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error)
	Update(ctx context.Context, assignment *domain.Assignment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// assignmentRepositoryImpl is the GORM implementation of AssignmentRepository
type assignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new instance of AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create creates a new assignment
func (r *assignmentRepositoryImpl) Create(ctx context.Context, assignment *domain.Assignment) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return err
	}
	return nil
}

// CreateWithBoard creates an assignment together with a board seeded with default
// columns. Neither record exists unless both were committed.
func (r *assignmentRepositoryImpl) CreateWithBoard(ctx context.Context, assignment *domain.Assignment, board *domain.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createBoardWithDefaults(tx, board); err != nil {
			return err
		}
		assignment.BoardID = &board.ID
		return tx.Create(assignment).Error
	})
}

// FindByID finds an assignment by ID
func (r *assignmentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	var assignment domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByBoardID finds the assignment linked to a board, returning nil when none exists
func (r *assignmentRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) (*domain.Assignment, error) {
	var assignment domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// FindByOwner finds the assignments of a user, optionally filtered by status
func (r *assignmentRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*domain.Assignment, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var assignments []*domain.Assignment
	if err := query.Order("due_date ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindDueBetween finds incomplete assignments due within [from, to)
func (r *assignmentRepositoryImpl) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error) {
	var assignments []*domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("status <> ? AND due_date >= ? AND due_date < ?", domain.AssignmentStatusCompleted, from, to).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Update updates an assignment
func (r *assignmentRepositoryImpl) Update(ctx context.Context, assignment *domain.Assignment) error {
	if err := r.db.WithContext(ctx).Save(assignment).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes an assignment
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Assignment{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
