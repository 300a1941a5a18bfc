package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/response"
)

func TestMemberService_AddOrUpdateMember(t *testing.T) {
	actorID := uuid.New()
	creatorID := uuid.New()
	targetID := uuid.New()
	boardID := uuid.New()

	board := &domain.Board{CreatorID: creatorID}
	board.ID = boardID

	targetUser := &domain.User{Email: "member@example.com"}
	targetUser.ID = targetID
	creatorUser := &domain.User{Email: "creator@example.com"}
	creatorUser.ID = creatorID

	tests := []struct {
		name        string
		req         *dto.UpsertMemberRequest
		mockUser    func(*MockUserRepository)
		mockAccess  func(*MockAccessService)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: invites a user as editor",
			req:  &dto.UpsertMemberRequest{Email: "member@example.com", Role: domain.BoardRoleEditor},
			mockUser: func(m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return targetUser, nil
				}
			},
			wantErr: false,
		},
		{
			name: "fail: non-admin actor",
			req:  &dto.UpsertMemberRequest{Email: "member@example.com", Role: domain.BoardRoleEditor},
			mockAccess: func(m *MockAccessService) {
				m.CanManageMembersFunc = func(ctx context.Context, userID, boardID uuid.UUID) error {
					return response.NewAppError(response.ErrCodeForbidden, "Only board admins can manage members", "")
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:        "fail: unknown role",
			req:         &dto.UpsertMemberRequest{Email: "member@example.com", Role: domain.BoardRole("owner")},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name: "fail: no account with that email",
			req:  &dto.UpsertMemberRequest{Email: "missing@example.com", Role: domain.BoardRoleViewer},
			mockUser: func(m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name: "fail: cannot change the creator's membership",
			req:  &dto.UpsertMemberRequest{Email: "creator@example.com", Role: domain.BoardRoleViewer},
			mockUser: func(m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return creatorUser, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo := &MockBoardMemberRepository{}
			boardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				},
			}
			userRepo := &MockUserRepository{}
			access := &MockAccessService{}

			if tt.mockUser != nil {
				tt.mockUser(userRepo)
			}
			if tt.mockAccess != nil {
				tt.mockAccess(access)
			}

			service := NewMemberService(memberRepo, boardRepo, userRepo, access, zap.NewNop())

			got, err := service.AddOrUpdateMember(context.Background(), actorID, boardID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("AddOrUpdateMember() error = nil, wantErr true")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("AddOrUpdateMember() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
			} else {
				if err != nil {
					t.Fatalf("AddOrUpdateMember() unexpected error = %v", err)
				}
				if got == nil {
					t.Fatal("AddOrUpdateMember() returned nil response")
				}
				if got.Role != tt.req.Role {
					t.Errorf("AddOrUpdateMember() role = %v, want %v", got.Role, tt.req.Role)
				}
			}
		})
	}
}

func TestMemberService_AddOrUpdateMember_InvalidatesRoleCache(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()
	boardID := uuid.New()

	board := &domain.Board{CreatorID: actorID}
	board.ID = boardID
	target := &domain.User{Email: "member@example.com"}
	target.ID = targetID

	invalidated := false
	access := &MockAccessService{
		InvalidateRoleFunc: func(ctx context.Context, userID, bID uuid.UUID) {
			if userID == targetID && bID == boardID {
				invalidated = true
			}
		},
	}
	userRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return target, nil
		},
	}
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return board, nil
		},
	}

	service := NewMemberService(&MockBoardMemberRepository{}, boardRepo, userRepo, access, zap.NewNop())

	_, err := service.AddOrUpdateMember(context.Background(), actorID, boardID, &dto.UpsertMemberRequest{
		Email: "member@example.com",
		Role:  domain.BoardRoleViewer,
	})
	if err != nil {
		t.Fatalf("AddOrUpdateMember() unexpected error = %v", err)
	}
	if !invalidated {
		t.Error("AddOrUpdateMember() did not invalidate the target's cached role")
	}
}

func TestMemberService_RemoveMember(t *testing.T) {
	creatorID := uuid.New()
	memberID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name        string
		actorID     uuid.UUID
		targetID    uuid.UUID
		isCreator   bool
		membership  *domain.BoardMember
		wantErr     bool
		wantErrCode string
	}{
		{
			name:       "success: creator removes a member",
			actorID:    creatorID,
			targetID:   memberID,
			isCreator:  true,
			membership: &domain.BoardMember{BoardID: boardID, UserID: memberID, Role: domain.BoardRoleEditor},
		},
		{
			name:        "fail: non-creator cannot remove members",
			actorID:     memberID,
			targetID:    creatorID,
			isCreator:   false,
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:        "fail: creator cannot remove themselves",
			actorID:     creatorID,
			targetID:    creatorID,
			isCreator:   true,
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "fail: membership does not exist",
			actorID:     creatorID,
			targetID:    memberID,
			isCreator:   true,
			membership:  nil,
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := &MockAccessService{
				IsCreatorFunc: func(ctx context.Context, userID, boardID uuid.UUID) (bool, error) {
					return tt.isCreator, nil
				},
			}
			memberRepo := &MockBoardMemberRepository{
				FindByBoardAndUserFunc: func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
					return tt.membership, nil
				},
			}

			service := NewMemberService(memberRepo, &MockBoardRepository{}, &MockUserRepository{}, access, zap.NewNop())

			err := service.RemoveMember(context.Background(), tt.actorID, boardID, tt.targetID)

			if tt.wantErr {
				if err == nil {
					t.Fatal("RemoveMember() error = nil, wantErr true")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("RemoveMember() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
			} else if err != nil {
				t.Errorf("RemoveMember() unexpected error = %v", err)
			}
		})
	}
}
