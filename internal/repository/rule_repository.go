package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
)

// RuleRepository defines the interface for rule data access
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.Rule) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error)
	FindEnabledByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error)
	Update(ctx context.Context, rule *domain.Rule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ruleRepositoryImpl is the GORM implementation of RuleRepository
type ruleRepositoryImpl struct {
	db *gorm.DB
}

// NewRuleRepository creates a new instance of RuleRepository
func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

// Create creates a new rule
func (r *ruleRepositoryImpl) Create(ctx context.Context, rule *domain.Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// FindByID finds a rule by its ID
func (r *ruleRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error) {
	var rule domain.Rule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindByBoardID finds all rules for a board in creation order
func (r *ruleRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error) {
	var rules []*domain.Rule
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// FindEnabledByBoardID finds the enabled rules for a board in creation order.
// Creation order keeps dispatch deterministic for a fixed rule set.
func (r *ruleRepositoryImpl) FindEnabledByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error) {
	var rules []*domain.Rule
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND enabled = ?", boardID, true).
		Order("created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Update saves a modified rule
func (r *ruleRepositoryImpl) Update(ctx context.Context, rule *domain.Rule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

// Delete removes a rule. Deleting an id that does not exist is a no-op.
func (r *ruleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Rule{}, "id = ?", id).Error
}
