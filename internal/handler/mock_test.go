package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockRuleService is a mock implementation of service.RuleService
type MockRuleService struct {
	CreateRuleFunc func(ctx context.Context, boardID, authorID uuid.UUID, req *dto.CreateRuleRequest) (*dto.RuleResponse, error)
	GetRuleFunc    func(ctx context.Context, ruleID uuid.UUID) (*dto.RuleResponse, error)
	ListRulesFunc  func(ctx context.Context, boardID uuid.UUID) ([]*dto.RuleResponse, error)
	UpdateRuleFunc func(ctx context.Context, ruleID, authorID uuid.UUID, req *dto.UpdateRuleRequest) (*dto.RuleResponse, error)
	DeleteRuleFunc func(ctx context.Context, ruleID uuid.UUID) error
}

func (m *MockRuleService) CreateRule(ctx context.Context, boardID, authorID uuid.UUID, req *dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	if m.CreateRuleFunc != nil {
		return m.CreateRuleFunc(ctx, boardID, authorID, req)
	}
	return nil, nil
}

func (m *MockRuleService) GetRule(ctx context.Context, ruleID uuid.UUID) (*dto.RuleResponse, error) {
	if m.GetRuleFunc != nil {
		return m.GetRuleFunc(ctx, ruleID)
	}
	return nil, nil
}

func (m *MockRuleService) ListRules(ctx context.Context, boardID uuid.UUID) ([]*dto.RuleResponse, error) {
	if m.ListRulesFunc != nil {
		return m.ListRulesFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockRuleService) UpdateRule(ctx context.Context, ruleID, authorID uuid.UUID, req *dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	if m.UpdateRuleFunc != nil {
		return m.UpdateRuleFunc(ctx, ruleID, authorID, req)
	}
	return nil, nil
}

func (m *MockRuleService) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	if m.DeleteRuleFunc != nil {
		return m.DeleteRuleFunc(ctx, ruleID)
	}
	return nil
}

// MockPermissionService is a mock implementation of service.PermissionService
type MockPermissionService struct {
	GetPermissionsFunc       func(role domain.Role) ([]string, error)
	HasPermissionFunc        func(ctx context.Context, userID, boardID uuid.UUID, permission string) (bool, error)
	AssignRoleFunc           func(ctx context.Context, userID, boardID uuid.UUID, role domain.Role) (*dto.RoleAssignmentResponse, error)
	RevokeRoleFunc           func(ctx context.Context, userID, boardID uuid.UUID) error
	GetUserRolesFunc         func(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Role, error)
	ListBoardAssignmentsFunc func(ctx context.Context, boardID uuid.UUID) ([]*dto.RoleAssignmentResponse, error)
}

func (m *MockPermissionService) GetPermissions(role domain.Role) ([]string, error) {
	if m.GetPermissionsFunc != nil {
		return m.GetPermissionsFunc(role)
	}
	return role.Permissions(), nil
}

func (m *MockPermissionService) HasPermission(ctx context.Context, userID, boardID uuid.UUID, permission string) (bool, error) {
	if m.HasPermissionFunc != nil {
		return m.HasPermissionFunc(ctx, userID, boardID, permission)
	}
	return true, nil
}

func (m *MockPermissionService) AssignRole(ctx context.Context, userID, boardID uuid.UUID, role domain.Role) (*dto.RoleAssignmentResponse, error) {
	if m.AssignRoleFunc != nil {
		return m.AssignRoleFunc(ctx, userID, boardID, role)
	}
	return nil, nil
}

func (m *MockPermissionService) RevokeRole(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.RevokeRoleFunc != nil {
		return m.RevokeRoleFunc(ctx, userID, boardID)
	}
	return nil
}

func (m *MockPermissionService) GetUserRoles(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Role, error) {
	if m.GetUserRolesFunc != nil {
		return m.GetUserRolesFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockPermissionService) ListBoardAssignments(ctx context.Context, boardID uuid.UUID) ([]*dto.RoleAssignmentResponse, error) {
	if m.ListBoardAssignmentsFunc != nil {
		return m.ListBoardAssignmentsFunc(ctx, boardID)
	}
	return nil, nil
}

// MockExecutionService is a mock implementation of service.ExecutionService
type MockExecutionService struct {
	ListBoardExecutionsFunc func(ctx context.Context, boardID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error)
	ListRuleExecutionsFunc  func(ctx context.Context, ruleID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error)
}

func (m *MockExecutionService) ListBoardExecutions(ctx context.Context, boardID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error) {
	if m.ListBoardExecutionsFunc != nil {
		return m.ListBoardExecutionsFunc(ctx, boardID, limit)
	}
	return nil, nil
}

func (m *MockExecutionService) ListRuleExecutions(ctx context.Context, ruleID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error) {
	if m.ListRuleExecutionsFunc != nil {
		return m.ListRuleExecutionsFunc(ctx, ruleID, limit)
	}
	return nil, nil
}

// MockActivityProcessor records events fed to the engine
type MockActivityProcessor struct {
	OnActivityFunc func(ctx context.Context, event *domain.ActivityEvent)
}

func (m *MockActivityProcessor) OnActivity(ctx context.Context, event *domain.ActivityEvent) {
	if m.OnActivityFunc != nil {
		m.OnActivityFunc(ctx, event)
	}
}
