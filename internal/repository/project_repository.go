package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	// CreateWithBoard creates the project and its linked board atomically
	CreateWithBoard(ctx context.Context, project *domain.Project, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*domain.Project, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	return nil
}

// CreateWithBoard creates a project together with a board seeded with default columns
func (r *projectRepositoryImpl) CreateWithBoard(ctx context.Context, project *domain.Project, board *domain.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createBoardWithDefaults(tx, board); err != nil {
			return err
		}
		project.BoardID = &board.ID
		return tx.Create(project).Error
	})
}

// FindByID finds a project by ID
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwner finds the projects of a user, optionally filtered by status
func (r *projectRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*domain.Project, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var projects []*domain.Project
	if err := query.Order("end_date ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindDueBetween finds active projects ending within [from, to)
func (r *projectRepositoryImpl) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("status <> ? AND end_date >= ? AND end_date < ?", domain.ProjectStatusCompleted, from, to).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a project
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
