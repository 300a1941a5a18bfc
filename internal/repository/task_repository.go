package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithAssignees creates the task and its assignee rows in one transaction
	CreateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByColumn(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	// UpdateWithAssignees saves the task and, when replaceAssignees is set,
	// swaps the full assignee set in the same transaction
	UpdateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID, replaceAssignees bool) error
	Move(ctx context.Context, taskID, columnID uuid.UUID) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// CreateWithAssignees creates a task along with its initial assignees
func (r *taskRepositoryImpl) CreateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		if len(assigneeIDs) == 0 {
			return nil
		}

		assignees := make([]*domain.TaskAssignee, 0, len(assigneeIDs))
		for _, userID := range assigneeIDs {
			assignees = append(assignees, &domain.TaskAssignee{
				TaskID: task.ID,
				UserID: userID,
			})
		}
		if err := tx.Create(&assignees).Error; err != nil {
			return err
		}

		task.Assignees = make([]domain.TaskAssignee, 0, len(assignees))
		for _, a := range assignees {
			task.Assignees = append(task.Assignees, *a)
		}
		return nil
	})
}

// FindByID finds a task with its assignees and comments preloaded
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("parent_id IS NULL").Order("created_at ASC")
		}).
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByColumn finds all tasks in a column with assignees preloaded
func (r *taskRepositoryImpl) FindByColumn(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Where("column_id = ?", columnID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return err
	}
	return nil
}

// UpdateWithAssignees saves scalar fields and optionally the assignee set atomically.
// Readers never observe the scalar update without the new assignee set.
func (r *taskRepositoryImpl) UpdateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID, replaceAssignees bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignees", "Comments").Save(task).Error; err != nil {
			return err
		}
		if !replaceAssignees {
			return nil
		}

		if err := tx.Where("task_id = ?", task.ID).
			Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		if len(assigneeIDs) == 0 {
			task.Assignees = nil
			return nil
		}

		assignees := make([]*domain.TaskAssignee, 0, len(assigneeIDs))
		for _, userID := range assigneeIDs {
			assignees = append(assignees, &domain.TaskAssignee{
				TaskID: task.ID,
				UserID: userID,
			})
		}
		if err := tx.Create(&assignees).Error; err != nil {
			return err
		}

		task.Assignees = make([]domain.TaskAssignee, 0, len(assignees))
		for _, a := range assignees {
			task.Assignees = append(task.Assignees, *a)
		}
		return nil
	})
}

// Move updates only the column of a task
func (r *taskRepositoryImpl) Move(ctx context.Context, taskID, columnID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", taskID).
		Update("column_id", columnID).Error; err != nil {
		return err
	}
	return nil
}

// DeleteCascade deletes a task with its comments, assignees and attachment rows in one transaction
func (r *taskRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&domain.Comment{}).Select("id").Where("task_id = ?", id)

		if err := tx.Where("entity_type = ? AND entity_id IN (?)", domain.EntityTypeComment, commentIDs).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", domain.EntityTypeTask, id).
			Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).
			Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).
			Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Task{}).Error
	})
}
