package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
	"board-automation-api/internal/response"
)

// ActivityProcessor evaluates one activity event against the board's rules
type ActivityProcessor interface {
	OnActivity(ctx context.Context, event *domain.ActivityEvent)
}

// ActivityHandler receives activity events from the board service's
// activity log and feeds them to the rule engine.
type ActivityHandler struct {
	engine ActivityProcessor
}

func NewActivityHandler(engine ActivityProcessor) *ActivityHandler {
	return &ActivityHandler{
		engine: engine,
	}
}

// ReceiveActivity accepts one activity event. Rule evaluation outcomes are
// recorded in the execution audit trail, not returned to the caller.
func (h *ActivityHandler) ReceiveActivity(c *gin.Context) {
	var req dto.ActivityEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if !req.ActivityType.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown activity type")
		return
	}

	h.engine.OnActivity(c.Request.Context(), req.ToEvent())

	response.SendSuccess(c, http.StatusAccepted, nil)
}
