package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/client"
	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
)

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

// MockBoardClient is a mock implementation of client.BoardClient
type MockBoardClient struct {
	GetBoardLayoutFunc       func(ctx context.Context, boardID uuid.UUID) (*client.BoardLayout, error)
	FindBoardByTitleFunc     func(ctx context.Context, title string) (*client.BoardLayout, error)
	MoveCardFunc             func(ctx context.Context, cardID uuid.UUID, req client.MoveCardRequest) error
	ArchiveCardFunc          func(ctx context.Context, cardID uuid.UUID) error
	UnarchiveCardFunc        func(ctx context.Context, cardID uuid.UUID) error
	CreateCardFunc           func(ctx context.Context, req client.CreateCardRequest) error
	LinkCardFunc             func(ctx context.Context, cardID uuid.UUID, req client.MoveCardRequest) error
	CreateSwimlaneFunc       func(ctx context.Context, boardID uuid.UUID, title string) (uuid.UUID, error)
	SetCardDateFunc          func(ctx context.Context, cardID uuid.UUID, field string, value time.Time) error
	ClearCardDateFunc        func(ctx context.Context, cardID uuid.UUID, field string) error
	AddCardLabelFunc         func(ctx context.Context, cardID uuid.UUID, labelID string) error
	RemoveCardLabelFunc      func(ctx context.Context, cardID uuid.UUID, labelID string) error
	RemoveAllCardLabelsFunc  func(ctx context.Context, cardID uuid.UUID) error
	AddCardMemberFunc        func(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveCardMemberFunc     func(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveAllCardMembersFunc func(ctx context.Context, cardID uuid.UUID) error
	SetCardColorFunc         func(ctx context.Context, cardID uuid.UUID, color string) error
	AddChecklistFunc         func(ctx context.Context, cardID uuid.UUID, title string) error
	RemoveChecklistFunc      func(ctx context.Context, cardID uuid.UUID, title string) error
	SetChecklistItemsFunc    func(ctx context.Context, cardID uuid.UUID, title string, checked bool) error
}

func (m *MockBoardClient) GetBoardLayout(ctx context.Context, boardID uuid.UUID) (*client.BoardLayout, error) {
	if m.GetBoardLayoutFunc != nil {
		return m.GetBoardLayoutFunc(ctx, boardID)
	}
	return &client.BoardLayout{BoardID: boardID}, nil
}

func (m *MockBoardClient) FindBoardByTitle(ctx context.Context, title string) (*client.BoardLayout, error) {
	if m.FindBoardByTitleFunc != nil {
		return m.FindBoardByTitleFunc(ctx, title)
	}
	return &client.BoardLayout{Title: title}, nil
}

func (m *MockBoardClient) MoveCard(ctx context.Context, cardID uuid.UUID, req client.MoveCardRequest) error {
	if m.MoveCardFunc != nil {
		return m.MoveCardFunc(ctx, cardID, req)
	}
	return nil
}

func (m *MockBoardClient) ArchiveCard(ctx context.Context, cardID uuid.UUID) error {
	if m.ArchiveCardFunc != nil {
		return m.ArchiveCardFunc(ctx, cardID)
	}
	return nil
}

func (m *MockBoardClient) UnarchiveCard(ctx context.Context, cardID uuid.UUID) error {
	if m.UnarchiveCardFunc != nil {
		return m.UnarchiveCardFunc(ctx, cardID)
	}
	return nil
}

func (m *MockBoardClient) CreateCard(ctx context.Context, req client.CreateCardRequest) error {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, req)
	}
	return nil
}

func (m *MockBoardClient) LinkCard(ctx context.Context, cardID uuid.UUID, req client.MoveCardRequest) error {
	if m.LinkCardFunc != nil {
		return m.LinkCardFunc(ctx, cardID, req)
	}
	return nil
}

func (m *MockBoardClient) CreateSwimlane(ctx context.Context, boardID uuid.UUID, title string) (uuid.UUID, error) {
	if m.CreateSwimlaneFunc != nil {
		return m.CreateSwimlaneFunc(ctx, boardID, title)
	}
	return uuid.New(), nil
}

func (m *MockBoardClient) SetCardDate(ctx context.Context, cardID uuid.UUID, field string, value time.Time) error {
	if m.SetCardDateFunc != nil {
		return m.SetCardDateFunc(ctx, cardID, field, value)
	}
	return nil
}

func (m *MockBoardClient) ClearCardDate(ctx context.Context, cardID uuid.UUID, field string) error {
	if m.ClearCardDateFunc != nil {
		return m.ClearCardDateFunc(ctx, cardID, field)
	}
	return nil
}

func (m *MockBoardClient) AddCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error {
	if m.AddCardLabelFunc != nil {
		return m.AddCardLabelFunc(ctx, cardID, labelID)
	}
	return nil
}

func (m *MockBoardClient) RemoveCardLabel(ctx context.Context, cardID uuid.UUID, labelID string) error {
	if m.RemoveCardLabelFunc != nil {
		return m.RemoveCardLabelFunc(ctx, cardID, labelID)
	}
	return nil
}

func (m *MockBoardClient) RemoveAllCardLabels(ctx context.Context, cardID uuid.UUID) error {
	if m.RemoveAllCardLabelsFunc != nil {
		return m.RemoveAllCardLabelsFunc(ctx, cardID)
	}
	return nil
}

func (m *MockBoardClient) AddCardMember(ctx context.Context, cardID, userID uuid.UUID) error {
	if m.AddCardMemberFunc != nil {
		return m.AddCardMemberFunc(ctx, cardID, userID)
	}
	return nil
}

func (m *MockBoardClient) RemoveCardMember(ctx context.Context, cardID, userID uuid.UUID) error {
	if m.RemoveCardMemberFunc != nil {
		return m.RemoveCardMemberFunc(ctx, cardID, userID)
	}
	return nil
}

func (m *MockBoardClient) RemoveAllCardMembers(ctx context.Context, cardID uuid.UUID) error {
	if m.RemoveAllCardMembersFunc != nil {
		return m.RemoveAllCardMembersFunc(ctx, cardID)
	}
	return nil
}

func (m *MockBoardClient) SetCardColor(ctx context.Context, cardID uuid.UUID, color string) error {
	if m.SetCardColorFunc != nil {
		return m.SetCardColorFunc(ctx, cardID, color)
	}
	return nil
}

func (m *MockBoardClient) AddChecklist(ctx context.Context, cardID uuid.UUID, title string) error {
	if m.AddChecklistFunc != nil {
		return m.AddChecklistFunc(ctx, cardID, title)
	}
	return nil
}

func (m *MockBoardClient) RemoveChecklist(ctx context.Context, cardID uuid.UUID, title string) error {
	if m.RemoveChecklistFunc != nil {
		return m.RemoveChecklistFunc(ctx, cardID, title)
	}
	return nil
}

func (m *MockBoardClient) SetChecklistItems(ctx context.Context, cardID uuid.UUID, title string, checked bool) error {
	if m.SetChecklistItemsFunc != nil {
		return m.SetChecklistItemsFunc(ctx, cardID, title, checked)
	}
	return nil
}

// MockMailClient is a mock implementation of client.MailClient
type MockMailClient struct {
	SendMailFunc func(ctx context.Context, to, subject, body string) error
}

func (m *MockMailClient) SendMail(ctx context.Context, to, subject, body string) error {
	if m.SendMailFunc != nil {
		return m.SendMailFunc(ctx, to, subject, body)
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
