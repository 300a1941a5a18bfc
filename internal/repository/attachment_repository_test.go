package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

func setupAttachmentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create attachments table for SQLite compatibility
	db.Exec(`CREATE TABLE attachments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		entity_type TEXT NOT NULL,
		entity_id TEXT,
		status TEXT NOT NULL DEFAULT 'TEMP',
		file_name TEXT NOT NULL,
		file_key TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		content_type TEXT NOT NULL,
		uploaded_by TEXT NOT NULL,
		expires_at DATETIME
	)`)

	return db
}

func makeAttachment(status domain.AttachmentStatus, expiresAt *time.Time) *domain.Attachment {
	return &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.EntityTypeTask,
		Status:      status,
		FileName:    "report.pdf",
		FileKey:     "tasks/2026/08/" + uuid.New().String() + ".pdf",
		FileSize:    1024,
		ContentType: "application/pdf",
		UploadedBy:  uuid.New(),
		ExpiresAt:   expiresAt,
	}
}

func TestAttachmentRepository_FindExpiredTemp(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	now := time.Now()
	pastTime := now.Add(-2 * time.Hour)
	futureTime := now.Add(2 * time.Hour)

	expired := makeAttachment(domain.AttachmentStatusTemp, &pastTime)
	db.Create(expired)

	stillValid := makeAttachment(domain.AttachmentStatusTemp, &futureTime)
	db.Create(stillValid)

	// Confirmed attachments never expire, even with a stale timestamp
	confirmed := makeAttachment(domain.AttachmentStatusConfirmed, &pastTime)
	db.Create(confirmed)

	got, err := repo.FindExpiredTemp(ctx, now)
	if err != nil {
		t.Fatalf("FindExpiredTemp() unexpected error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FindExpiredTemp() returned %d attachments, want 1", len(got))
	}
	if got[0].ID != expired.ID {
		t.Errorf("FindExpiredTemp() returned %v, want %v", got[0].ID, expired.ID)
	}
}

func TestAttachmentRepository_Confirm(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	expiry := time.Now().Add(1 * time.Hour)
	temp1 := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	temp2 := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	db.Create(temp1)
	db.Create(temp2)

	taskID := uuid.New()

	err := repo.Confirm(ctx, []uuid.UUID{temp1.ID, temp2.ID}, domain.EntityTypeTask, taskID)
	if err != nil {
		t.Fatalf("Confirm() unexpected error = %v", err)
	}

	for _, id := range []uuid.UUID{temp1.ID, temp2.ID} {
		got, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("FindByID() unexpected error = %v", err)
		}
		if got.Status != domain.AttachmentStatusConfirmed {
			t.Errorf("attachment %v status = %v, want %v", id, got.Status, domain.AttachmentStatusConfirmed)
		}
		if got.EntityID == nil || *got.EntityID != taskID {
			t.Errorf("attachment %v entity = %v, want %v", id, got.EntityID, taskID)
		}
	}
}

func TestAttachmentRepository_Confirm_RejectsAlreadyConfirmed(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	expiry := time.Now().Add(1 * time.Hour)
	temp := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	alreadyConfirmed := makeAttachment(domain.AttachmentStatusConfirmed, nil)
	db.Create(temp)
	db.Create(alreadyConfirmed)

	err := repo.Confirm(ctx, []uuid.UUID{temp.ID, alreadyConfirmed.ID}, domain.EntityTypeTask, uuid.New())
	if err == nil {
		t.Fatal("Confirm() error = nil, want error when a non-TEMP attachment is included")
	}
}

func TestAttachmentRepository_DeleteBatch(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	expiry := time.Now().Add(-1 * time.Hour)
	a1 := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	a2 := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	keep := makeAttachment(domain.AttachmentStatusTemp, &expiry)
	db.Create(a1)
	db.Create(a2)
	db.Create(keep)

	if err := repo.DeleteBatch(ctx, []uuid.UUID{a1.ID, a2.ID}); err != nil {
		t.Fatalf("DeleteBatch() unexpected error = %v", err)
	}

	remaining, err := repo.FindExpiredTemp(ctx, time.Now())
	if err != nil {
		t.Fatalf("FindExpiredTemp() unexpected error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != keep.ID {
		t.Errorf("expected only the untouched attachment to remain, got %d rows", len(remaining))
	}
}

func TestAttachmentRepository_DeleteBatch_EmptyInput(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)

	if err := repo.DeleteBatch(context.Background(), nil); err != nil {
		t.Fatalf("DeleteBatch() unexpected error for empty input = %v", err)
	}
}
