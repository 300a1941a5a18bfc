package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// MemberService defines the interface for board membership business logic
type MemberService interface {
	AddOrUpdateMember(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpsertMemberRequest) (*dto.MemberResponse, error)
	ListMembers(ctx context.Context, actorID, boardID uuid.UUID) ([]*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, actorID, boardID, targetUserID uuid.UUID) error
}

// memberServiceImpl is the implementation of MemberService
type memberServiceImpl struct {
	memberRepo repository.BoardMemberRepository
	boardRepo  repository.BoardRepository
	userRepo   repository.UserRepository
	access     AccessService
	logger     *zap.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(
	memberRepo repository.BoardMemberRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	access AccessService,
	logger *zap.Logger,
) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
		boardRepo:  boardRepo,
		userRepo:   userRepo,
		access:     access,
		logger:     logger,
	}
}

// AddOrUpdateMember invites a user by email or changes an existing member's role.
// The upsert keeps the (board, user) pair unique; a second invite updates the
// role in place.
func (s *memberServiceImpl) AddOrUpdateMember(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpsertMemberRequest) (*dto.MemberResponse, error) {
	if err := s.access.CanManageMembers(ctx, actorID, boardID); err != nil {
		return nil, err
	}

	if !req.Role.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Role must be admin, editor or viewer", "")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}
	if user == nil {
		return nil, response.NewAppError(response.ErrCodeNotFound, "No user with that email", "")
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if board.CreatorID == user.ID {
		return nil, response.NewAppError(response.ErrCodeValidation, "The creator's membership cannot be changed", "")
	}

	member := &domain.BoardMember{
		BoardID:  boardID,
		UserID:   user.ID,
		Role:     req.Role,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberRepo.Upsert(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save membership", err.Error())
	}

	s.access.InvalidateRole(ctx, user.ID, boardID)
	s.logger.Info("Board member upserted",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(req.Role)),
	)

	// The upsert may have updated an existing row; reload for the real ID and JoinedAt
	saved, err := s.memberRepo.FindByBoardAndUser(ctx, boardID, user.ID)
	if err != nil || saved == nil {
		return dto.ToMemberResponse(member), nil
	}
	return dto.ToMemberResponse(saved), nil
}

// ListMembers returns the memberships of a board; any member may look
func (s *memberServiceImpl) ListMembers(ctx context.Context, actorID, boardID uuid.UUID) ([]*dto.MemberResponse, error) {
	if err := s.access.CanAccess(ctx, actorID, boardID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list members", err.Error())
	}

	responses := make([]*dto.MemberResponse, len(members))
	for i, member := range members {
		responses[i] = dto.ToMemberResponse(member)
	}
	return responses, nil
}

// RemoveMember removes a membership; only the creator may do this, and the
// creator themselves can never be removed
func (s *memberServiceImpl) RemoveMember(ctx context.Context, actorID, boardID, targetUserID uuid.UUID) error {
	isCreator, err := s.access.IsCreator(ctx, actorID, boardID)
	if err != nil {
		return err
	}
	if !isCreator {
		return response.NewAppError(response.ErrCodeForbidden, "Only the board creator can remove members", "")
	}
	if targetUserID == actorID {
		return response.NewAppError(response.ErrCodeValidation, "The creator cannot be removed from the board", "")
	}

	member, err := s.memberRepo.FindByBoardAndUser(ctx, boardID, targetUserID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to look up membership", err.Error())
	}
	if member == nil {
		return response.NewAppError(response.ErrCodeNotFound, "Membership not found", "")
	}

	if err := s.memberRepo.Delete(ctx, boardID, targetUserID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}

	s.access.InvalidateRole(ctx, targetUserID, boardID)
	s.logger.Info("Board member removed",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", targetUserID.String()),
	)
	return nil
}
