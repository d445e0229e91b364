package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/metrics"
	"board-automation-api/internal/repository"
	"board-automation-api/internal/response"
)

// Engine orchestrates rule evaluation: on every activity event it finds the
// board's enabled rules, runs the trigger matcher, and dispatches each match
// in creation order. Every dispatch outcome is recorded in the execution
// audit log; one rule's failure never blocks its siblings, and nothing is
// retried (at-most-once per event per rule).
type Engine struct {
	ruleRepo      repository.RuleRepository
	executionRepo repository.ExecutionRepository
	dispatcher    *Dispatcher
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// New creates a new Engine
func New(
	ruleRepo repository.RuleRepository,
	executionRepo repository.ExecutionRepository,
	dispatcher *Dispatcher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		ruleRepo:      ruleRepo,
		executionRepo: executionRepo,
		dispatcher:    dispatcher,
		metrics:       m,
		logger:        logger,
	}
}

// OnActivity processes one activity event to completion. Errors are internal
// to the engine: the activity source fires and forgets.
func (e *Engine) OnActivity(ctx context.Context, event *domain.ActivityEvent) {
	if e.metrics != nil {
		e.metrics.IncrementActivity(string(event.ActivityType))
	}

	rules, err := e.ruleRepo.FindEnabledByBoardID(ctx, event.BoardID)
	if err != nil {
		e.logger.Error("Failed to fetch rules for activity",
			zap.String("board_id", event.BoardID.String()),
			zap.String("activity_type", string(event.ActivityType)),
			zap.Error(err),
		)
		return
	}

	for _, rule := range rules {
		e.evaluateRule(ctx, rule, event)
	}
}

// evaluateRule matches and, on a match, dispatches a single rule. Failures
// are recorded per rule per event, never propagated.
func (e *Engine) evaluateRule(ctx context.Context, rule *domain.Rule, event *domain.ActivityEvent) {
	trigger, err := rule.TriggerSpec()
	if err != nil {
		e.logger.Warn("Rule has undecodable trigger, skipping",
			zap.String("rule_id", rule.ID.String()),
			zap.Error(err),
		)
		return
	}

	matched, diag := Matches(trigger, event)
	if diag != nil {
		if e.metrics != nil {
			e.metrics.IncrementMalformedTrigger()
		}
		e.logger.Warn("Malformed trigger",
			zap.String("rule_id", rule.ID.String()),
			zap.String("diagnostic", diag.String()),
		)
	}
	if !matched {
		// Non-matches are the expected common case; discarded silently.
		return
	}

	if e.metrics != nil {
		e.metrics.IncrementRulesMatched()
	}

	action, err := rule.ActionSpec()
	if err != nil {
		e.recordExecution(ctx, rule, event, domain.ExecutionFailed, "undecodable action: "+err.Error())
		return
	}

	dispatchErr := e.dispatcher.Execute(ctx, rule, action, event)
	status := domain.ExecutionSucceeded
	message := ""
	if dispatchErr != nil {
		status = domain.ExecutionFailed
		var appErr *response.AppError
		if errors.As(dispatchErr, &appErr) && appErr.Code == response.ErrCodeUnauthorized {
			status = domain.ExecutionSkipped
		}
		message = dispatchErr.Error()
		e.logger.Warn("Rule action dispatch failed",
			zap.String("rule_id", rule.ID.String()),
			zap.String("action_type", string(action.Type)),
			zap.Error(dispatchErr),
		)
	}

	if e.metrics != nil {
		e.metrics.IncrementActionDispatched(string(action.Type), string(status))
	}
	e.recordExecution(ctx, rule, event, status, message)
}

func (e *Engine) recordExecution(ctx context.Context, rule *domain.Rule, event *domain.ActivityEvent, status domain.ExecutionStatus, message string) {
	execution := &domain.RuleExecution{
		RuleID:       rule.ID,
		BoardID:      event.BoardID,
		ActivityType: event.ActivityType,
		Status:       status,
		Message:      message,
	}
	if err := e.executionRepo.Create(ctx, execution); err != nil {
		e.logger.Error("Failed to record rule execution",
			zap.String("rule_id", rule.ID.String()),
			zap.Error(err),
		)
	}
}
