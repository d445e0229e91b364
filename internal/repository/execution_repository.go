package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
)

// ExecutionRepository defines the interface for rule execution audit records
type ExecutionRepository interface {
	Create(ctx context.Context, execution *domain.RuleExecution) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.RuleExecution, error)
	FindByRuleID(ctx context.Context, ruleID uuid.UUID, limit int) ([]*domain.RuleExecution, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// executionRepositoryImpl is the GORM implementation of ExecutionRepository
type executionRepositoryImpl struct {
	db *gorm.DB
}

// NewExecutionRepository creates a new instance of ExecutionRepository
func NewExecutionRepository(db *gorm.DB) ExecutionRepository {
	return &executionRepositoryImpl{db: db}
}

// Create records a rule execution outcome
func (r *executionRepositoryImpl) Create(ctx context.Context, execution *domain.RuleExecution) error {
	return r.db.WithContext(ctx).Create(execution).Error
}

// FindByBoardID lists recent executions for a board, newest first
func (r *executionRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.RuleExecution, error) {
	var executions []*domain.RuleExecution
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Limit(limit).
		Find(&executions).Error; err != nil {
		return nil, err
	}
	return executions, nil
}

// FindByRuleID lists recent executions for a rule, newest first
func (r *executionRepositoryImpl) FindByRuleID(ctx context.Context, ruleID uuid.UUID, limit int) ([]*domain.RuleExecution, error) {
	var executions []*domain.RuleExecution
	if err := r.db.WithContext(ctx).
		Where("rule_id = ?", ruleID).
		Order("created_at DESC").
		Limit(limit).
		Find(&executions).Error; err != nil {
		return nil, err
	}
	return executions, nil
}

// DeleteOlderThan purges executions created before the cutoff and returns how
// many rows were removed
func (r *executionRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.RuleExecution{})
	return result.RowsAffected, result.Error
}
