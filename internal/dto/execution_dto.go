package dto

import (
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/domain"
)

// ExecutionResponse represents a rule execution audit record in API responses
type ExecutionResponse struct {
	ID           uuid.UUID              `json:"id"`
	RuleID       uuid.UUID              `json:"ruleId"`
	BoardID      uuid.UUID              `json:"boardId"`
	ActivityType domain.ActivityType    `json:"activityType"`
	Status       domain.ExecutionStatus `json:"status"`
	Message      string                 `json:"message,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}
