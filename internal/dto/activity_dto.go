package dto

import (
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/domain"
)

// ActivityEventRequest is the activity intake payload delivered by the
// board service's activity log.
type ActivityEventRequest struct {
	ActivityType domain.ActivityType `json:"activityType" binding:"required"`
	BoardID      uuid.UUID           `json:"boardId" binding:"required"`
	UserID       uuid.UUID           `json:"userId" binding:"required"`
	CardID       uuid.UUID           `json:"cardId,omitempty"`
	ListID       uuid.UUID           `json:"listId,omitempty"`
	SwimlaneID   uuid.UUID           `json:"swimlaneId,omitempty"`
	LabelID      string              `json:"labelId,omitempty"`
	Username     string              `json:"username,omitempty"`
	Timestamp    time.Time           `json:"timestamp,omitempty"`
	Payload      map[string]string   `json:"payload,omitempty"`
}

// ToEvent converts the request into the engine's event type
func (r *ActivityEventRequest) ToEvent() *domain.ActivityEvent {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &domain.ActivityEvent{
		ActivityType: r.ActivityType,
		BoardID:      r.BoardID,
		UserID:       r.UserID,
		CardID:       r.CardID,
		ListID:       r.ListID,
		SwimlaneID:   r.SwimlaneID,
		LabelID:      r.LabelID,
		Username:     r.Username,
		Timestamp:    ts,
		Payload:      r.Payload,
	}
}
