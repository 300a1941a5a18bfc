package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Order matters for fresh installs: parents before children.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.VerificationToken{},
		&domain.Board{},
		&domain.BoardMember{},
		&domain.Column{},
		&domain.Task{},
		&domain.TaskAssignee{},
		&domain.Comment{},
		&domain.Attachment{},
		&domain.Assignment{},
		&domain.Project{},
		&domain.Template{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate migrates one model at a time, logging per table, so a single
// failing table surfaces by name instead of an opaque batch error.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	models := []struct {
		model     interface{}
		tableName string
	}{
		{&domain.User{}, "users"},
		{&domain.VerificationToken{}, "verification_tokens"},
		{&domain.Board{}, "boards"},
		{&domain.BoardMember{}, "board_members"},
		{&domain.Column{}, "columns"},
		{&domain.Task{}, "tasks"},
		{&domain.TaskAssignee{}, "task_assignees"},
		{&domain.Comment{}, "comments"},
		{&domain.Attachment{}, "attachments"},
		{&domain.Assignment{}, "assignments"},
		{&domain.Project{}, "projects"},
		{&domain.Template{}, "templates"},
	}

	migrator := db.Migrator()

	for _, m := range models {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models)))
	return nil
}
