package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is a recorded board mutation delivered by the activity
// source. The engine only reads events; it never persists or mutates them.
type ActivityEvent struct {
	ActivityType ActivityType `json:"activityType"`
	BoardID      uuid.UUID    `json:"boardId"`
	// UserID is the actor who performed the activity.
	UserID     uuid.UUID `json:"userId"`
	CardID     uuid.UUID `json:"cardId,omitempty"`
	ListID     uuid.UUID `json:"listId,omitempty"`
	SwimlaneID uuid.UUID `json:"swimlaneId,omitempty"`
	LabelID    string    `json:"labelId,omitempty"`
	Username   string    `json:"username,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	// Payload carries activity-specific fields referenced by trigger
	// conditions (checklist names, comment text, list titles, ...).
	Payload map[string]string `json:"payload,omitempty"`
}

// Field resolves a condition field against the event. Known attributes take
// precedence over payload entries. The second return reports whether the
// field exists on this event at all; a condition referencing a field absent
// on the activity type simply never matches.
func (e *ActivityEvent) Field(name string) (string, bool) {
	switch name {
	case "activityType":
		return string(e.ActivityType), true
	case "boardId":
		return e.BoardID.String(), true
	case "userId":
		return e.UserID.String(), true
	case "cardId":
		if e.CardID == uuid.Nil {
			return "", false
		}
		return e.CardID.String(), true
	case "listId":
		if e.ListID == uuid.Nil {
			return "", false
		}
		return e.ListID.String(), true
	case "swimlaneId":
		if e.SwimlaneID == uuid.Nil {
			return "", false
		}
		return e.SwimlaneID.String(), true
	case "labelId":
		if e.LabelID == "" {
			return "", false
		}
		return e.LabelID, true
	case "username":
		if e.Username == "" {
			return "", false
		}
		return e.Username, true
	}
	v, ok := e.Payload[name]
	return v, ok
}
