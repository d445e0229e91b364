package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
	"board-automation-api/internal/repository"
)

const defaultExecutionLimit = 50

// ExecutionService exposes the rule execution audit trail
type ExecutionService interface {
	ListBoardExecutions(ctx context.Context, boardID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error)
	ListRuleExecutions(ctx context.Context, ruleID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error)
}

type executionServiceImpl struct {
	executionRepo repository.ExecutionRepository
	logger        *zap.Logger
}

func NewExecutionService(executionRepo repository.ExecutionRepository, logger *zap.Logger) ExecutionService {
	return &executionServiceImpl{
		executionRepo: executionRepo,
		logger:        logger,
	}
}

func (s *executionServiceImpl) ListBoardExecutions(ctx context.Context, boardID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error) {
	if limit <= 0 {
		limit = defaultExecutionLimit
	}
	executions, err := s.executionRepo.FindByBoardID(ctx, boardID, limit)
	if err != nil {
		s.logger.Error("Failed to list board executions", zap.String("board_id", boardID.String()), zap.Error(err))
		return nil, err
	}
	return toExecutionResponses(executions), nil
}

func (s *executionServiceImpl) ListRuleExecutions(ctx context.Context, ruleID uuid.UUID, limit int) ([]*dto.ExecutionResponse, error) {
	if limit <= 0 {
		limit = defaultExecutionLimit
	}
	executions, err := s.executionRepo.FindByRuleID(ctx, ruleID, limit)
	if err != nil {
		s.logger.Error("Failed to list rule executions", zap.String("rule_id", ruleID.String()), zap.Error(err))
		return nil, err
	}
	return toExecutionResponses(executions), nil
}

func toExecutionResponses(executions []*domain.RuleExecution) []*dto.ExecutionResponse {
	responses := make([]*dto.ExecutionResponse, 0, len(executions))
	for _, execution := range executions {
		responses = append(responses, &dto.ExecutionResponse{
			ID:           execution.ID,
			RuleID:       execution.RuleID,
			BoardID:      execution.BoardID,
			ActivityType: execution.ActivityType,
			Status:       execution.Status,
			Message:      execution.Message,
			CreatedAt:    execution.CreatedAt,
		})
	}
	return responses
}
