package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	UpdateFunc        func(ctx context.Context, user *domain.User) error
	DeleteByIDFunc    func(ctx context.Context, id uuid.UUID) error
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// MockVerificationTokenRepository is a mock implementation of repository.VerificationTokenRepository
type MockVerificationTokenRepository struct {
	ReplaceFunc       func(ctx context.Context, token *domain.VerificationToken) error
	FindByTokenFunc   func(ctx context.Context, token string) (*domain.VerificationToken, error)
	DeleteFunc        func(ctx context.Context, token *domain.VerificationToken) error
	DeleteByEmailFunc func(ctx context.Context, email string) error
}

func (m *MockVerificationTokenRepository) Replace(ctx context.Context, token *domain.VerificationToken) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, token)
	}
	return nil
}

func (m *MockVerificationTokenRepository) FindByToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockVerificationTokenRepository) Delete(ctx context.Context, token *domain.VerificationToken) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	return nil
}

func (m *MockVerificationTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	return nil
}

// MockBoardRepository is a mock implementation of repository.BoardRepository
type MockBoardRepository struct {
	CreateWithDefaultsFunc   func(ctx context.Context, board *domain.Board) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithDetailFunc   func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByCreatorFunc        func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error)
	FindAccessibleByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc               func(ctx context.Context, board *domain.Board) error
	UpdateTitleFunc          func(ctx context.Context, id uuid.UUID, title string) error
	DeleteCascadeFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) CreateWithDefaults(ctx context.Context, board *domain.Board) error {
	if m.CreateWithDefaultsFunc != nil {
		return m.CreateWithDefaultsFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDWithDetail(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithDetailFunc != nil {
		return m.FindByIDWithDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByCreatorFunc != nil {
		return m.FindByCreatorFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindAccessibleByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindAccessibleByUserFunc != nil {
		return m.FindAccessibleByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(ctx, id, title)
	}
	return nil
}

func (m *MockBoardRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockBoardMemberRepository is a mock implementation of repository.BoardMemberRepository
type MockBoardMemberRepository struct {
	UpsertFunc             func(ctx context.Context, member *domain.BoardMember) error
	FindByBoardAndUserFunc func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoardFunc        func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	DeleteFunc             func(ctx context.Context, boardID, userID uuid.UUID) error
}

func (m *MockBoardMemberRepository) Upsert(ctx context.Context, member *domain.BoardMember) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, member)
	}
	return nil
}

func (m *MockBoardMemberRepository) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	if m.FindByBoardAndUserFunc != nil {
		return m.FindByBoardAndUserFunc(ctx, boardID, userID)
	}
	return nil, nil
}

func (m *MockBoardMemberRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardMemberRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, userID)
	}
	return nil
}

// MockColumnRepository is a mock implementation of repository.ColumnRepository
type MockColumnRepository struct {
	CreateFunc        func(ctx context.Context, column *domain.Column) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardFunc   func(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	UpdateFunc        func(ctx context.Context, column *domain.Column) error
	MaxPositionFunc   func(ctx context.Context, boardID uuid.UUID) (int, error)
	CountByBoardFunc  func(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteCascadeFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockColumnRepository) Create(ctx context.Context, column *domain.Column) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockColumnRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockColumnRepository) Update(ctx context.Context, column *domain.Column) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	if m.MaxPositionFunc != nil {
		return m.MaxPositionFunc(ctx, boardID)
	}
	return -1, nil
}

func (m *MockColumnRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.CountByBoardFunc != nil {
		return m.CountByBoardFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockColumnRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of repository.TaskRepository
type MockTaskRepository struct {
	CreateWithAssigneesFunc func(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByColumnFunc        func(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc              func(ctx context.Context, task *domain.Task) error
	UpdateWithAssigneesFunc func(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID, replaceAssignees bool) error
	MoveFunc                func(ctx context.Context, taskID, columnID uuid.UUID) error
	DeleteCascadeFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) CreateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID) error {
	if m.CreateWithAssigneesFunc != nil {
		return m.CreateWithAssigneesFunc(ctx, task, assigneeIDs)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByColumn(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByColumnFunc != nil {
		return m.FindByColumnFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) UpdateWithAssignees(ctx context.Context, task *domain.Task, assigneeIDs []uuid.UUID, replaceAssignees bool) error {
	if m.UpdateWithAssigneesFunc != nil {
		return m.UpdateWithAssigneesFunc(ctx, task, assigneeIDs, replaceAssignees)
	}
	return nil
}

func (m *MockTaskRepository) Move(ctx context.Context, taskID, columnID uuid.UUID) error {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, taskID, columnID)
	}
	return nil
}

func (m *MockTaskRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of repository.CommentRepository
type MockCommentRepository struct {
	CreateFunc            func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByTaskFunc        func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc            func(ctx context.Context, comment *domain.Comment) error
	DeleteWithRepliesFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByTaskFunc != nil {
		return m.FindByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) DeleteWithReplies(ctx context.Context, id uuid.UUID) error {
	if m.DeleteWithRepliesFunc != nil {
		return m.DeleteWithRepliesFunc(ctx, id)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of repository.AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByEntityFunc    func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error)
	FindByIDsFunc       func(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error)
	FindExpiredTempFunc func(ctx context.Context, now time.Time) ([]*domain.Attachment, error)
	ConfirmFunc         func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteBatchFunc     func(ctx context.Context, attachmentIDs []uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByEntityFunc != nil {
		return m.FindByEntityFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.Attachment, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Confirm(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, attachmentIDs, entityType, entityID)
	}
	return nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAttachmentRepository) DeleteBatch(ctx context.Context, attachmentIDs []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, attachmentIDs)
	}
	return nil
}

// MockAssignmentRepository is a mock implementation of repository.AssignmentRepository
type MockAssignmentRepository struct {
	CreateFunc          func(ctx context.Context, assignment *domain.Assignment) error
	CreateWithBoardFunc func(ctx context.Context, assignment *domain.Assignment, board *domain.Board) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	FindByBoardIDFunc   func(ctx context.Context, boardID uuid.UUID) (*domain.Assignment, error)
	FindByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*domain.Assignment, error)
	FindDueBetweenFunc  func(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error)
	UpdateFunc          func(ctx context.Context, assignment *domain.Assignment) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) CreateWithBoard(ctx context.Context, assignment *domain.Assignment, board *domain.Board) error {
	if m.CreateWithBoardFunc != nil {
		return m.CreateWithBoardFunc(ctx, assignment, board)
	}
	return nil
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) (*domain.Assignment, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.AssignmentStatus) ([]*domain.Assignment, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID, status)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error) {
	if m.FindDueBetweenFunc != nil {
		return m.FindDueBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) Update(ctx context.Context, assignment *domain.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	CreateFunc          func(ctx context.Context, project *domain.Project) error
	CreateWithBoardFunc func(ctx context.Context, project *domain.Project, board *domain.Board) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*domain.Project, error)
	FindDueBetweenFunc  func(ctx context.Context, from, to time.Time) ([]*domain.Project, error)
	UpdateFunc          func(ctx context.Context, project *domain.Project) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) CreateWithBoard(ctx context.Context, project *domain.Project, board *domain.Board) error {
	if m.CreateWithBoardFunc != nil {
		return m.CreateWithBoardFunc(ctx, project, board)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ProjectStatus) ([]*domain.Project, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID, status)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Project, error) {
	if m.FindDueBetweenFunc != nil {
		return m.FindDueBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTemplateRepository is a mock implementation of repository.TemplateRepository
type MockTemplateRepository struct {
	CreateFunc      func(ctx context.Context, template *domain.Template) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	FindByOwnerFunc func(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*domain.Template, error)
	UpdateFunc      func(ctx context.Context, template *domain.Template) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	return nil
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTemplateRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, kind *domain.TemplateKind) ([]*domain.Template, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID, kind)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Update(ctx context.Context, template *domain.Template) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, template)
	}
	return nil
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAccessService is a mock implementation of AccessService
type MockAccessService struct {
	ResolveRoleFunc      func(ctx context.Context, userID, boardID uuid.UUID) (domain.BoardRole, error)
	CanAccessFunc        func(ctx context.Context, userID, boardID uuid.UUID) error
	CanEditFunc          func(ctx context.Context, userID, boardID uuid.UUID) error
	CanManageMembersFunc func(ctx context.Context, userID, boardID uuid.UUID) error
	IsCreatorFunc        func(ctx context.Context, userID, boardID uuid.UUID) (bool, error)
	InvalidateRoleFunc   func(ctx context.Context, userID, boardID uuid.UUID)
}

func (m *MockAccessService) ResolveRole(ctx context.Context, userID, boardID uuid.UUID) (domain.BoardRole, error) {
	if m.ResolveRoleFunc != nil {
		return m.ResolveRoleFunc(ctx, userID, boardID)
	}
	return domain.BoardRoleAdmin, nil
}

func (m *MockAccessService) CanAccess(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.CanAccessFunc != nil {
		return m.CanAccessFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockAccessService) CanEdit(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.CanEditFunc != nil {
		return m.CanEditFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockAccessService) CanManageMembers(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.CanManageMembersFunc != nil {
		return m.CanManageMembersFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockAccessService) IsCreator(ctx context.Context, userID, boardID uuid.UUID) (bool, error) {
	if m.IsCreatorFunc != nil {
		return m.IsCreatorFunc(ctx, userID, boardID)
	}
	return true, nil
}

func (m *MockAccessService) InvalidateRole(ctx context.Context, userID, boardID uuid.UUID) {
	if m.InvalidateRoleFunc != nil {
		m.InvalidateRoleFunc(ctx, userID, boardID)
	}
}
