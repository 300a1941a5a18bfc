package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/response"
)

// For any assignee array with duplicates, task creation persists each unique
// assignee exactly once, in any order.
func TestProperty_AssigneeDeduplication(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Task creation persists only unique assignees", prop.ForAll(
		func(uniqueCount int, duplicateFactor int) bool {
			boardID := uuid.New()
			columnID := uuid.New()

			uniqueAssignees := make([]uuid.UUID, uniqueCount)
			for i := 0; i < uniqueCount; i++ {
				uniqueAssignees[i] = uuid.New()
			}

			withDuplicates := make([]uuid.UUID, 0, uniqueCount*duplicateFactor)
			for j := 0; j < duplicateFactor; j++ {
				withDuplicates = append(withDuplicates, uniqueAssignees...)
			}

			var persisted []uuid.UUID
			taskRepo := &MockTaskRepository{
				CreateWithAssigneesFunc: func(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error {
					task.ID = uuid.New()
					persisted = assigneeIDs
					return nil
				},
			}
			columnRepo := &MockColumnRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
					return &domain.Column{BaseModel: domain.BaseModel{ID: columnID}, BoardID: boardID}, nil
				},
			}

			service := newTaskServiceForTest(taskRepo, columnRepo, &MockAssignmentRepository{}, &MockAttachmentRepository{}, &MockAccessService{})

			req := &dto.CreateTaskRequest{Title: "Write report", AssigneeIDs: withDuplicates}
			if _, err := service.CreateTask(context.Background(), uuid.New(), columnID, req); err != nil {
				t.Logf("Unexpected error for %d assignees: %v", len(withDuplicates), err)
				return false
			}

			if len(persisted) != uniqueCount {
				t.Logf("Expected %d unique assignees persisted, got %d", uniqueCount, len(persisted))
				return false
			}

			persistedSet := make(map[uuid.UUID]bool, len(persisted))
			for _, id := range persisted {
				persistedSet[id] = true
			}
			for _, id := range uniqueAssignees {
				if !persistedSet[id] {
					t.Logf("Assignee %s was dropped during deduplication", id)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}

// A task update replaces the assignee set exactly when the request carries an
// assignee array; a request without one leaves the set untouched. An empty
// array is a replacement that clears all assignees.
func TestProperty_AssigneeReplacementFollowsRequestShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Replacement happens iff the request has an assignee array", prop.ForAll(
		func(hasArray bool, assigneeCount int) bool {
			boardID := uuid.New()
			columnID := uuid.New()
			taskID := uuid.New()

			var assigneeIDs []uuid.UUID
			if hasArray {
				assigneeIDs = make([]uuid.UUID, 0, assigneeCount)
				for i := 0; i < assigneeCount; i++ {
					assigneeIDs = append(assigneeIDs, uuid.New())
				}
			}

			replaced := false
			taskRepo := &MockTaskRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
					return &domain.Task{BaseModel: domain.BaseModel{ID: taskID}, ColumnID: columnID, Title: "Draft"}, nil
				},
				UpdateWithAssigneesFunc: func(ctx context.Context, task *domain.Task, ids []uuid.UUID, replaceAssignees bool) error {
					replaced = replaceAssignees
					return nil
				},
			}
			columnRepo := &MockColumnRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
					return &domain.Column{BaseModel: domain.BaseModel{ID: columnID}, BoardID: boardID}, nil
				},
			}

			service := newTaskServiceForTest(taskRepo, columnRepo, &MockAssignmentRepository{}, &MockAttachmentRepository{}, &MockAccessService{})

			req := &dto.UpdateTaskRequest{AssigneeIDs: assigneeIDs}
			if _, err := service.UpdateTask(context.Background(), uuid.New(), taskID, req); err != nil {
				t.Logf("Unexpected error: %v", err)
				return false
			}

			if replaced != hasArray {
				t.Logf("replaceAssignees = %v for hasArray = %v", replaced, hasArray)
				return false
			}
			return true
		},
		gen.Bool(),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

// For any task due date on a board linked to an assignment with a deadline,
// creation succeeds exactly when the task due date does not exceed it.
func TestProperty_DueDateCeiling(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	assignmentDue := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	properties.Property("Task due dates past the assignment deadline are rejected", prop.ForAll(
		func(offsetHours int) bool {
			boardID := uuid.New()
			columnID := uuid.New()
			taskDue := assignmentDue.Add(time.Duration(offsetHours) * time.Hour)

			taskRepo := &MockTaskRepository{
				CreateWithAssigneesFunc: func(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error {
					task.ID = uuid.New()
					return nil
				},
			}
			columnRepo := &MockColumnRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
					return &domain.Column{BaseModel: domain.BaseModel{ID: columnID}, BoardID: boardID}, nil
				},
			}
			assignmentRepo := &MockAssignmentRepository{
				FindByBoardIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
					return &domain.Assignment{BaseModel: domain.BaseModel{ID: uuid.New()}, DueDate: &assignmentDue}, nil
				},
			}

			service := newTaskServiceForTest(taskRepo, columnRepo, assignmentRepo, &MockAttachmentRepository{}, &MockAccessService{})

			req := &dto.CreateTaskRequest{Title: "Write report", DueDate: &taskDue}
			_, err := service.CreateTask(context.Background(), uuid.New(), columnID, req)

			if offsetHours <= 0 {
				if err != nil {
					t.Logf("Due date %v within the deadline was rejected: %v", taskDue, err)
					return false
				}
				return true
			}

			if err == nil {
				t.Logf("Due date %v past the deadline was accepted", taskDue)
				return false
			}
			appErr, ok := err.(*response.AppError)
			if !ok || appErr.Code != response.ErrCodeValidation {
				t.Logf("Expected validation error, got %v", err)
				return false
			}
			return true
		},
		gen.IntRange(-72, 72),
	))

	properties.TestingRun(t)
}
