package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
	"board-automation-api/internal/metrics"
	"board-automation-api/internal/repository"
	"board-automation-api/internal/response"
)

// RuleService defines the interface for rule management logic
type RuleService interface {
	CreateRule(ctx context.Context, boardID, authorID uuid.UUID, req *dto.CreateRuleRequest) (*dto.RuleResponse, error)
	GetRule(ctx context.Context, ruleID uuid.UUID) (*dto.RuleResponse, error)
	ListRules(ctx context.Context, boardID uuid.UUID) ([]*dto.RuleResponse, error)
	UpdateRule(ctx context.Context, ruleID, authorID uuid.UUID, req *dto.UpdateRuleRequest) (*dto.RuleResponse, error)
	DeleteRule(ctx context.Context, ruleID uuid.UUID) error
}

// ruleServiceImpl is the implementation of RuleService
type ruleServiceImpl struct {
	ruleRepo repository.RuleRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRuleService creates a new instance of RuleService
func NewRuleService(ruleRepo repository.RuleRepository, m *metrics.Metrics, logger *zap.Logger) RuleService {
	return &ruleServiceImpl{
		ruleRepo: ruleRepo,
		metrics:  m,
		logger:   logger,
	}
}

// CreateRule validates the trigger and action specs, normalizes blank trigger
// fields to the wildcard sentinel, and persists the rule. Invalid specs never
// reach storage.
func (s *ruleServiceImpl) CreateRule(ctx context.Context, boardID, authorID uuid.UUID, req *dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	trigger := req.Trigger
	trigger.Normalize()
	if err := trigger.Validate(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidTrigger, "Invalid trigger", err.Error())
	}

	action := req.Action
	if err := action.Validate(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidAction, "Invalid action", err.Error())
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	rule := &domain.Rule{
		BoardID:  boardID,
		AuthorID: authorID,
		Title:    strings.TrimSpace(req.Title),
		Enabled:  enabled,
	}
	if rule.Title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Rule title must not be empty", "")
	}
	if err := rule.SetTrigger(&trigger); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode trigger", err.Error())
	}
	if err := rule.SetAction(&action); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode action", err.Error())
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create rule", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementRuleCreated()
	}
	s.logger.Info("Rule created",
		zap.String("rule_id", rule.ID.String()),
		zap.String("board_id", boardID.String()),
		zap.String("activity_type", string(trigger.ActivityType)),
		zap.String("action_type", string(action.Type)),
	)

	return toRuleResponse(rule, &trigger, &action), nil
}

// GetRule retrieves a rule by ID
func (s *ruleServiceImpl) GetRule(ctx context.Context, ruleID uuid.UUID) (*dto.RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Rule not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch rule", err.Error())
	}
	return decodeRuleResponse(rule)
}

// ListRules retrieves all rules for a board
func (s *ruleServiceImpl) ListRules(ctx context.Context, boardID uuid.UUID) ([]*dto.RuleResponse, error) {
	rules, err := s.ruleRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch rules", err.Error())
	}

	responses := make([]*dto.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp, err := decodeRuleResponse(rule)
		if err != nil {
			s.logger.Warn("Skipping rule with undecodable specs",
				zap.String("rule_id", rule.ID.String()),
				zap.Error(err))
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpdateRule applies the patch and re-validates the merged result with the
// same checks as create.
func (s *ruleServiceImpl) UpdateRule(ctx context.Context, ruleID, authorID uuid.UUID, req *dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Rule not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch rule", err.Error())
	}

	trigger, err := rule.TriggerSpec()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored trigger", err.Error())
	}
	action, err := rule.ActionSpec()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored action", err.Error())
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Rule title must not be empty", "")
		}
		rule.Title = title
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.Trigger != nil {
		trigger = req.Trigger
	}
	if req.Action != nil {
		action = req.Action
	}

	trigger.Normalize()
	if err := trigger.Validate(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidTrigger, "Invalid trigger", err.Error())
	}
	if err := action.Validate(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidAction, "Invalid action", err.Error())
	}

	rule.AuthorID = authorID
	if err := rule.SetTrigger(trigger); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode trigger", err.Error())
	}
	if err := rule.SetAction(action); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode action", err.Error())
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update rule", err.Error())
	}

	return toRuleResponse(rule, trigger, action), nil
}

// DeleteRule removes a rule together with its trigger and action (they live
// on the same row). Deleting a non-existent id is a no-op.
func (s *ruleServiceImpl) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete rule", err.Error())
	}
	return nil
}

func decodeRuleResponse(rule *domain.Rule) (*dto.RuleResponse, error) {
	trigger, err := rule.TriggerSpec()
	if err != nil {
		return nil, err
	}
	action, err := rule.ActionSpec()
	if err != nil {
		return nil, err
	}
	return toRuleResponse(rule, trigger, action), nil
}

func toRuleResponse(rule *domain.Rule, trigger *domain.TriggerSpec, action *domain.ActionSpec) *dto.RuleResponse {
	return &dto.RuleResponse{
		ID:        rule.ID,
		BoardID:   rule.BoardID,
		AuthorID:  rule.AuthorID,
		Title:     rule.Title,
		Enabled:   rule.Enabled,
		Trigger:   *trigger,
		Action:    *action,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}
