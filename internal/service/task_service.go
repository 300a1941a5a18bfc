package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/metrics"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, userID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo       repository.TaskRepository
	columnRepo     repository.ColumnRepository
	assignmentRepo repository.AssignmentRepository
	attachmentRepo repository.AttachmentRepository
	access         AccessService
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	columnRepo repository.ColumnRepository,
	assignmentRepo repository.AssignmentRepository,
	attachmentRepo repository.AttachmentRepository,
	access AccessService,
	logger *zap.Logger,
	m *metrics.Metrics,
) TaskService {
	return &taskServiceImpl{
		taskRepo:       taskRepo,
		columnRepo:     columnRepo,
		assignmentRepo: assignmentRepo,
		attachmentRepo: attachmentRepo,
		access:         access,
		logger:         logger,
		metrics:        m,
	}
}

// CreateTask creates a task in a column. When the column's board is linked to an
// assignment with a due date, the task due date may not exceed it.
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
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

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Task title cannot be empty", "")
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task priority", "")
		}
		priority = *req.Priority
	}

	if err := s.checkDueDate(ctx, column.BoardID, req.DueDate); err != nil {
		return nil, err
	}

	labels, err := marshalLabels(req.Labels)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid labels", err.Error())
	}

	if err := s.validateTempAttachments(ctx, req.AttachmentIDs); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ColumnID:    columnID,
		CreatorID:   userID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		Labels:      labels,
	}

	if err := s.taskRepo.CreateWithAssignees(ctx, task, dedupeUUIDs(req.AssigneeIDs)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	s.confirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeTask, task.ID)

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("column_id", columnID.String()),
	)

	return dto.ToTaskResponse(task), nil
}

// GetTask returns a task with assignees, comments and attachments
func (s *taskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, column, err := s.loadTaskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanAccess(ctx, userID, column.BoardID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.FindByEntity(ctx, domain.EntityTypeTask, taskID)
	if err == nil {
		task.Attachments = make([]domain.Attachment, 0, len(attachments))
		for _, a := range attachments {
			task.Attachments = append(task.Attachments, *a)
		}
	}

	return dto.ToTaskResponse(task), nil
}

// ListTasks returns the tasks of a column in creation order
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}
	if err := s.access.CanAccess(ctx, userID, column.BoardID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByColumn(ctx, columnID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}

	responses := make([]*dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = dto.ToTaskResponse(task)
	}
	return responses, nil
}

// UpdateTask applies a partial update. A non-nil AssigneeIDs replaces the whole
// assignee set in the same transaction as the scalar update.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, column, err := s.loadTaskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanEdit(ctx, userID, column.BoardID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Task title cannot be empty", "")
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task priority", "")
		}
		task.Priority = *req.Priority
	}
	if req.ClearDueDate {
		task.DueDate = nil
	} else if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Labels != nil {
		labels, err := marshalLabels(req.Labels)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid labels", err.Error())
		}
		task.Labels = labels
	}

	// The due-date ceiling holds on update as well as create
	if err := s.checkDueDate(ctx, column.BoardID, task.DueDate); err != nil {
		return nil, err
	}

	if err := s.validateTempAttachments(ctx, req.AttachmentIDs); err != nil {
		return nil, err
	}

	replaceAssignees := req.AssigneeIDs != nil
	if err := s.taskRepo.UpdateWithAssignees(ctx, task, dedupeUUIDs(req.AssigneeIDs), replaceAssignees); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	s.confirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeTask, task.ID)

	return dto.ToTaskResponse(task), nil
}

// MoveTask moves a task to another column of the same board
func (s *taskServiceImpl) MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
	task, column, err := s.loadTaskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanEdit(ctx, userID, column.BoardID); err != nil {
		return nil, err
	}

	dest, err := s.columnRepo.FindByID(ctx, req.ColumnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Destination column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load destination column", err.Error())
	}
	if dest.BoardID != column.BoardID {
		return nil, response.NewAppError(response.ErrCodeValidation, "Cannot move a task to a column on another board", "")
	}

	if err := s.taskRepo.Move(ctx, taskID, dest.ID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to move task", err.Error())
	}
	task.ColumnID = dest.ID

	if s.metrics != nil {
		s.metrics.IncrementTaskMoved()
	}
	s.logger.Info("Task moved",
		zap.String("task_id", taskID.String()),
		zap.String("column_id", dest.ID.String()),
	)

	return dto.ToTaskResponse(task), nil
}

// DeleteTask deletes a task with its comments, attachments and assignee rows
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	_, column, err := s.loadTaskWithBoard(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.access.CanEdit(ctx, userID, column.BoardID); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteCascade(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.logger.Info("Task deleted", zap.String("task_id", taskID.String()))
	return nil
}

// loadTaskWithBoard loads a task and its column, translating missing rows to 404
func (s *taskServiceImpl) loadTaskWithBoard(ctx context.Context, taskID uuid.UUID) (*domain.Task, *domain.Column, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}

	column, err := s.columnRepo.FindByID(ctx, task.ColumnID)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}
	return task, column, nil
}

// checkDueDate enforces the due-date ceiling of the board's linked assignment
func (s *taskServiceImpl) checkDueDate(ctx context.Context, boardID uuid.UUID, dueDate *time.Time) error {
	if dueDate == nil {
		return nil
	}

	assignment, err := s.assignmentRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check linked assignment", err.Error())
	}
	if assignment == nil || assignment.DueDate == nil {
		return nil
	}

	if dueDate.After(*assignment.DueDate) {
		return response.NewAppError(response.ErrCodeValidation,
			"Task due date cannot exceed the linked assignment's due date", "")
	}
	return nil
}

// validateTempAttachments ensures every referenced attachment exists and is still TEMP
func (s *taskServiceImpl) validateTempAttachments(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	attachments, err := s.attachmentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load attachments", err.Error())
	}
	if len(attachments) != len(ids) {
		return response.NewAppError(response.ErrCodeValidation, "One or more attachments do not exist", "")
	}
	for _, a := range attachments {
		if a.Status != domain.AttachmentStatusTemp {
			return response.NewAppError(response.ErrCodeValidation, "One or more attachments are already confirmed", "")
		}
	}
	return nil
}

// confirmAttachments binds TEMP attachments to the entity; failure is non-critical
func (s *taskServiceImpl) confirmAttachments(ctx context.Context, ids []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	if err := s.attachmentRepo.Confirm(ctx, ids, entityType, entityID); err != nil {
		s.logger.Warn("Failed to confirm attachments",
			zap.String("entity_id", entityID.String()),
			zap.Error(err),
		)
	}
}

// marshalLabels encodes the label list as a JSON column value
func marshalLabels(labels []string) (datatypes.JSON, error) {
	if labels == nil {
		labels = []string{}
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// dedupeUUIDs removes duplicate IDs preserving order
func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
