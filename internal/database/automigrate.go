package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.RoleAssignment{},
		&domain.Rule{},
		&domain.RuleExecution{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs GORM auto-migration model by model, logging whether
// each table already existed. Existing tables only receive schema updates.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	models := []modelInfo{
		{&domain.RoleAssignment{}, "role_assignments"},
		{&domain.Rule{}, "rules"},
		{&domain.RuleExecution{}, "rule_executions"},
	}

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate with retry and linear backoff.
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
