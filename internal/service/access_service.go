package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

const roleCacheTTL = 60 * time.Second

// AccessService resolves what a user may do on a board.
// Existence is checked before authorization: a missing board is always
// NotFound, an existing board the user cannot touch is always Forbidden.
type AccessService interface {
	ResolveRole(ctx context.Context, userID, boardID uuid.UUID) (domain.BoardRole, error)
	CanAccess(ctx context.Context, userID, boardID uuid.UUID) error
	CanEdit(ctx context.Context, userID, boardID uuid.UUID) error
	CanManageMembers(ctx context.Context, userID, boardID uuid.UUID) error
	IsCreator(ctx context.Context, userID, boardID uuid.UUID) (bool, error)
	InvalidateRole(ctx context.Context, userID, boardID uuid.UUID)
}

// accessServiceImpl is the implementation of AccessService
type accessServiceImpl struct {
	boardRepo  repository.BoardRepository
	memberRepo repository.BoardMemberRepository
	cache      *redis.Client
	logger     *zap.Logger
}

// NewAccessService creates a new instance of AccessService.
// The redis client is optional; a nil cache falls through to the database.
func NewAccessService(boardRepo repository.BoardRepository, memberRepo repository.BoardMemberRepository, cache *redis.Client, logger *zap.Logger) AccessService {
	return &accessServiceImpl{
		boardRepo:  boardRepo,
		memberRepo: memberRepo,
		cache:      cache,
		logger:     logger,
	}
}

func roleCacheKey(userID, boardID uuid.UUID) string {
	return fmt.Sprintf("ciao:role:%s:%s", boardID, userID)
}

// ResolveRole returns the effective role of a user on a board.
// The creator is admin even without a membership row.
func (s *accessServiceImpl) ResolveRole(ctx context.Context, userID, boardID uuid.UUID) (domain.BoardRole, error) {
	if role, ok := s.cachedRole(ctx, userID, boardID); ok {
		return role, nil
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	if board.CreatorID == userID {
		s.storeRole(ctx, userID, boardID, domain.BoardRoleAdmin)
		return domain.BoardRoleAdmin, nil
	}

	member, err := s.memberRepo.FindByBoardAndUser(ctx, boardID, userID)
	if err != nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to look up membership", err.Error())
	}
	if member == nil {
		return "", response.NewAppError(response.ErrCodeForbidden, "You do not have access to this board", "")
	}

	s.storeRole(ctx, userID, boardID, member.Role)
	return member.Role, nil
}

// CanAccess requires any role on the board
func (s *accessServiceImpl) CanAccess(ctx context.Context, userID, boardID uuid.UUID) error {
	_, err := s.ResolveRole(ctx, userID, boardID)
	return err
}

// CanEdit requires creator, admin or editor
func (s *accessServiceImpl) CanEdit(ctx context.Context, userID, boardID uuid.UUID) error {
	role, err := s.ResolveRole(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if !role.CanEdit() {
		return response.NewAppError(response.ErrCodeForbidden, "Viewer role cannot modify this board", "")
	}
	return nil
}

// CanManageMembers requires creator or admin
func (s *accessServiceImpl) CanManageMembers(ctx context.Context, userID, boardID uuid.UUID) error {
	role, err := s.ResolveRole(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if role != domain.BoardRoleAdmin {
		return response.NewAppError(response.ErrCodeForbidden, "Only board admins can manage members", "")
	}
	return nil
}

// IsCreator reports whether the user created the board
func (s *accessServiceImpl) IsCreator(ctx context.Context, userID, boardID uuid.UUID) (bool, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	return board.CreatorID == userID, nil
}

// InvalidateRole drops the cached role after a membership mutation
func (s *accessServiceImpl) InvalidateRole(ctx context.Context, userID, boardID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, roleCacheKey(userID, boardID)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate role cache",
			zap.String("board_id", boardID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

// cachedRole reads the role from redis; any failure is a miss
func (s *accessServiceImpl) cachedRole(ctx context.Context, userID, boardID uuid.UUID) (domain.BoardRole, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, roleCacheKey(userID, boardID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Role cache read failed", zap.Error(err))
		}
		return "", false
	}
	role := domain.BoardRole(val)
	if !role.IsValid() {
		return "", false
	}
	return role, true
}

func (s *accessServiceImpl) storeRole(ctx context.Context, userID, boardID uuid.UUID, role domain.BoardRole) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, roleCacheKey(userID, boardID), string(role), roleCacheTTL).Err(); err != nil {
		s.logger.Warn("Role cache write failed", zap.Error(err))
	}
}
