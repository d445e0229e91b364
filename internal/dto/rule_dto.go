package dto

import (
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/domain"
)

// CreateRuleRequest is the payload for creating a rule. The rule-builder UI
// collects title, trigger, and action in three steps and submits the
// complete record.
type CreateRuleRequest struct {
	Title   string             `json:"title" binding:"required"`
	Enabled *bool              `json:"enabled,omitempty"`
	Trigger domain.TriggerSpec `json:"trigger" binding:"required"`
	Action  domain.ActionSpec  `json:"action" binding:"required"`
}

// UpdateRuleRequest is the patch payload for editing a rule. Nil fields are
// left unchanged; the merged result is re-validated as a whole.
type UpdateRuleRequest struct {
	Title   *string             `json:"title,omitempty"`
	Enabled *bool               `json:"enabled,omitempty"`
	Trigger *domain.TriggerSpec `json:"trigger,omitempty"`
	Action  *domain.ActionSpec  `json:"action,omitempty"`
}

// RuleResponse represents a rule in API responses
type RuleResponse struct {
	ID        uuid.UUID          `json:"id"`
	BoardID   uuid.UUID          `json:"boardId"`
	AuthorID  uuid.UUID          `json:"authorId"`
	Title     string             `json:"title"`
	Enabled   bool               `json:"enabled"`
	Trigger   domain.TriggerSpec `json:"trigger"`
	Action    domain.ActionSpec  `json:"action"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
