package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	AddComment(ctx context.Context, userID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, userID, taskID uuid.UUID) ([]*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo    repository.CommentRepository
	taskRepo       repository.TaskRepository
	columnRepo     repository.ColumnRepository
	attachmentRepo repository.AttachmentRepository
	access         AccessService
	logger         *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	columnRepo repository.ColumnRepository,
	attachmentRepo repository.AttachmentRepository,
	access AccessService,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:    commentRepo,
		taskRepo:       taskRepo,
		columnRepo:     columnRepo,
		attachmentRepo: attachmentRepo,
		access:         access,
		logger:         logger,
	}
}

// AddComment adds a comment to a task. Viewers may comment. A reply must
// target a top-level comment on the same task, keeping threads one level deep.
func (s *commentServiceImpl) AddComment(ctx context.Context, userID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	boardID, err := s.boardOfTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanAccess(ctx, userID, boardID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment content cannot be empty", "")
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load parent comment", err.Error())
		}
		if parent.TaskID != taskID {
			return nil, response.NewAppError(response.ErrCodeValidation, "Parent comment belongs to a different task", "")
		}
		if parent.ParentID != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Replies to replies are not allowed", "")
		}
	}

	comment := &domain.Comment{
		TaskID:   taskID,
		AuthorID: userID,
		ParentID: req.ParentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentRepo.Confirm(ctx, req.AttachmentIDs, domain.EntityTypeComment, comment.ID); err != nil {
			s.logger.Warn("Failed to confirm comment attachments",
				zap.String("comment_id", comment.ID.String()),
				zap.Error(err),
			)
		}
	}

	return dto.ToCommentResponse(comment), nil
}

// ListComments returns top-level comments with their replies in creation order
func (s *commentServiceImpl) ListComments(ctx context.Context, userID, taskID uuid.UUID) ([]*dto.CommentResponse, error) {
	boardID, err := s.boardOfTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanAccess(ctx, userID, boardID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = dto.ToCommentResponse(comment)
	}
	return responses, nil
}

// DeleteComment deletes a comment and its replies. Allowed for the author and
// for board admins (the creator resolves to admin).
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	boardID, err := s.boardOfTask(ctx, comment.TaskID)
	if err != nil {
		return err
	}
	role, err := s.access.ResolveRole(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID && role != domain.BoardRoleAdmin {
		return response.NewAppError(response.ErrCodeForbidden, "Only the author or a board admin can delete this comment", "")
	}

	if err := s.commentRepo.DeleteWithReplies(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted", zap.String("comment_id", commentID.String()))
	return nil
}

// boardOfTask resolves the board owning a task, translating missing rows to 404
func (s *commentServiceImpl) boardOfTask(ctx context.Context, taskID uuid.UUID) (uuid.UUID, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}

	column, err := s.columnRepo.FindByID(ctx, task.ColumnID)
	if err != nil {
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}
	return column.BoardID, nil
}
