package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-board-api/internal/domain"
)

type modelInfo struct {
	model     interface{}
	tableName string
}

func models() []modelInfo {
	return []modelInfo{
		{&domain.Process{}, domain.Process{}.TableName()},
		{&domain.Responsible{}, domain.Responsible{}.TableName()},
		{&domain.Hearing{}, domain.Hearing{}.TableName()},
		{&domain.Meeting{}, domain.Meeting{}.TableName()},
		{&domain.Deadline{}, domain.Deadline{}.TableName()},
		{&domain.Activity{}, domain.Activity{}.TableName()},
		{&domain.HearingComment{}, domain.HearingComment{}.TableName()},
	}
}

// AutoMigrate creates or updates every table the service reads and writes.
// Existing tables only get missing columns and indexes added.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	list := models()

	for _, m := range list {
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

	logger.Info("Auto-migration completed", zap.Int("tables_migrated", len(list)))
	return nil
}
