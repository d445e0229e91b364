package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/domain"
)

// MockRoleAssignmentRepository is a mock implementation of repository.RoleAssignmentRepository
type MockRoleAssignmentRepository struct {
	AssignFunc             func(ctx context.Context, assignment *domain.RoleAssignment) error
	RevokeFunc             func(ctx context.Context, userID, boardID uuid.UUID) error
	FindByUserAndBoardFunc func(ctx context.Context, userID, boardID uuid.UUID) (*domain.RoleAssignment, error)
	FindByBoardIDFunc      func(ctx context.Context, boardID uuid.UUID) ([]*domain.RoleAssignment, error)
}

func (m *MockRoleAssignmentRepository) Assign(ctx context.Context, assignment *domain.RoleAssignment) error {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, assignment)
	}
	return nil
}

func (m *MockRoleAssignmentRepository) Revoke(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockRoleAssignmentRepository) FindByUserAndBoard(ctx context.Context, userID, boardID uuid.UUID) (*domain.RoleAssignment, error) {
	if m.FindByUserAndBoardFunc != nil {
		return m.FindByUserAndBoardFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockRoleAssignmentRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.RoleAssignment, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

// MockRuleRepository is a mock implementation of repository.RuleRepository
type MockRuleRepository struct {
	CreateFunc               func(ctx context.Context, rule *domain.Rule) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Rule, error)
	FindByBoardIDFunc        func(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error)
	FindEnabledByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error)
	UpdateFunc               func(ctx context.Context, rule *domain.Rule) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
}

func (m *MockRuleRepository) Create(ctx context.Context, rule *domain.Rule) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rule)
	}
	return nil
}

func (m *MockRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRuleRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockRuleRepository) FindEnabledByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Rule, error) {
	if m.FindEnabledByBoardIDFunc != nil {
		return m.FindEnabledByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockRuleRepository) Update(ctx context.Context, rule *domain.Rule) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rule)
	}
	return nil
}

func (m *MockRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockExecutionRepository is a mock implementation of repository.ExecutionRepository
type MockExecutionRepository struct {
	CreateFunc          func(ctx context.Context, execution *domain.RuleExecution) error
	FindByBoardIDFunc   func(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.RuleExecution, error)
	FindByRuleIDFunc    func(ctx context.Context, ruleID uuid.UUID, limit int) ([]*domain.RuleExecution, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockExecutionRepository) Create(ctx context.Context, execution *domain.RuleExecution) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, execution)
	}
	return nil
}

func (m *MockExecutionRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.RuleExecution, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID, limit)
	}
	return nil, nil
}

func (m *MockExecutionRepository) FindByRuleID(ctx context.Context, ruleID uuid.UUID, limit int) ([]*domain.RuleExecution, error) {
	if m.FindByRuleIDFunc != nil {
		return m.FindByRuleIDFunc(ctx, ruleID, limit)
	}
	return nil, nil
}

func (m *MockExecutionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}
