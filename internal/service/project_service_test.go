package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/response"
)

func TestProjectService_CreateProject(t *testing.T) {
	ownerID := uuid.New()
	endDate := time.Now().Add(30 * 24 * time.Hour)

	tests := []struct {
		name        string
		req         *dto.CreateProjectRequest
		mockRepo    func(*MockProjectRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: active project with end date",
			req:  &dto.CreateProjectRequest{Title: "Client site redesign", EndDate: &endDate},
			mockRepo: func(m *MockProjectRepository) {
				m.CreateFunc = func(ctx context.Context, project *domain.Project) error {
					project.ID = uuid.New()
					return nil
				}
			},
		},
		{
			name: "success: project with linked board shares the title",
			req:  &dto.CreateProjectRequest{Title: "Freelance portfolio", CreateBoard: true},
			mockRepo: func(m *MockProjectRepository) {
				m.CreateWithBoardFunc = func(ctx context.Context, project *domain.Project, board *domain.Board) error {
					if board.Title != project.Title {
						t.Errorf("CreateWithBoard() board title = %v, want %v", board.Title, project.Title)
					}
					if board.CreatorID != ownerID {
						t.Errorf("CreateWithBoard() board creator = %v, want %v", board.CreatorID, ownerID)
					}
					project.ID = uuid.New()
					board.ID = uuid.New()
					project.BoardID = &board.ID
					return nil
				}
			},
		},
		{
			name:        "fail: blank title",
			req:         &dto.CreateProjectRequest{Title: "  "},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectRepo := &MockProjectRepository{}
			if tt.mockRepo != nil {
				tt.mockRepo(projectRepo)
			}

			service := NewProjectService(projectRepo, &MockBoardRepository{}, zap.NewNop())

			got, err := service.CreateProject(context.Background(), ownerID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("CreateProject() error = nil, wantErr true")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("CreateProject() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateProject() unexpected error = %v", err)
			}
			if got.Status != domain.ProjectStatusActive {
				t.Errorf("CreateProject() Status = %v, want %v", got.Status, domain.ProjectStatusActive)
			}
			if tt.req.CreateBoard && got.BoardID == nil {
				t.Error("CreateProject() BoardID = nil, want linked board")
			}
		})
	}
}

func TestProjectService_GetProject_NotFoundBeforeForbidden(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	projectID := uuid.New()

	t.Run("missing project is not found even for a stranger", func(t *testing.T) {
		projectRepo := &MockProjectRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := NewProjectService(projectRepo, &MockBoardRepository{}, zap.NewNop())

		_, err := service.GetProject(context.Background(), strangerID, projectID)
		if err == nil {
			t.Fatal("GetProject() error = nil, wantErr true")
		}
		if appErr, ok := err.(*response.AppError); ok {
			if appErr.Code != response.ErrCodeNotFound {
				t.Errorf("GetProject() error code = %v, want %v", appErr.Code, response.ErrCodeNotFound)
			}
		}
	})

	t.Run("existing project owned by someone else is forbidden", func(t *testing.T) {
		projectRepo := &MockProjectRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
				return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}, OwnerID: ownerID}, nil
			},
		}
		service := NewProjectService(projectRepo, &MockBoardRepository{}, zap.NewNop())

		_, err := service.GetProject(context.Background(), strangerID, projectID)
		if err == nil {
			t.Fatal("GetProject() error = nil, wantErr true")
		}
		if appErr, ok := err.(*response.AppError); ok {
			if appErr.Code != response.ErrCodeForbidden {
				t.Errorf("GetProject() error code = %v, want %v", appErr.Code, response.ErrCodeForbidden)
			}
		}
	})
}

func TestProjectService_ListProjects_RejectsUnknownStatus(t *testing.T) {
	bogus := domain.ProjectStatus("cancelled")

	service := NewProjectService(&MockProjectRepository{}, &MockBoardRepository{}, zap.NewNop())

	_, err := service.ListProjects(context.Background(), uuid.New(), &bogus)
	if err == nil {
		t.Fatal("ListProjects() error = nil, wantErr true")
	}
	if appErr, ok := err.(*response.AppError); ok {
		if appErr.Code != response.ErrCodeValidation {
			t.Errorf("ListProjects() error code = %v, want %v", appErr.Code, response.ErrCodeValidation)
		}
	}
}

func TestProjectService_UpdateProject(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()
	boardID := uuid.New()
	newTitle := "Rebranded portfolio"
	sameTitle := "Portfolio"
	onHold := domain.ProjectStatusOnHold

	tests := []struct {
		name           string
		req            *dto.UpdateProjectRequest
		wantPropagated bool
	}{
		{
			name:           "title change propagates to the linked board",
			req:            &dto.UpdateProjectRequest{Title: &newTitle},
			wantPropagated: true,
		},
		{
			name: "unchanged title does not propagate",
			req:  &dto.UpdateProjectRequest{Title: &sameTitle},
		},
		{
			name: "status change alone does not touch the board",
			req:  &dto.UpdateProjectRequest{Status: &onHold},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectRepo := &MockProjectRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return &domain.Project{
						BaseModel: domain.BaseModel{ID: projectID},
						OwnerID:   ownerID,
						Title:   "Portfolio",
						Status:  domain.ProjectStatusActive,
						BoardID: &boardID,
					}, nil
				},
			}

			propagated := false
			boardRepo := &MockBoardRepository{
				UpdateTitleFunc: func(ctx context.Context, id uuid.UUID, title string) error {
					propagated = true
					return nil
				},
			}

			service := NewProjectService(projectRepo, boardRepo, zap.NewNop())

			got, err := service.UpdateProject(context.Background(), ownerID, projectID, tt.req)
			if err != nil {
				t.Fatalf("UpdateProject() unexpected error = %v", err)
			}
			if tt.req.Status != nil && got.Status != *tt.req.Status {
				t.Errorf("UpdateProject() Status = %v, want %v", got.Status, *tt.req.Status)
			}
			if propagated != tt.wantPropagated {
				t.Errorf("UpdateProject() board title propagated = %v, want %v", propagated, tt.wantPropagated)
			}
		})
	}
}

func TestProjectService_DeleteProject_OwnerOnly(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()

	deleted := false
	projectRepo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}, OwnerID: ownerID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	service := NewProjectService(projectRepo, &MockBoardRepository{}, zap.NewNop())

	if err := service.DeleteProject(context.Background(), uuid.New(), projectID); err == nil {
		t.Fatal("DeleteProject() error = nil, want forbidden for non-owner")
	}
	if deleted {
		t.Error("DeleteProject() deleted the project for a non-owner")
	}

	if err := service.DeleteProject(context.Background(), ownerID, projectID); err != nil {
		t.Fatalf("DeleteProject() unexpected error = %v", err)
	}
	if !deleted {
		t.Error("DeleteProject() did not delete for the owner")
	}
}
