package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board-automation-api/internal/response"
	"board-automation-api/internal/service"
)

type ExecutionHandler struct {
	executionService service.ExecutionService
}

func NewExecutionHandler(executionService service.ExecutionService) *ExecutionHandler {
	return &ExecutionHandler{
		executionService: executionService,
	}
}

// ListBoardExecutions returns recent rule executions on a board
func (h *ExecutionHandler) ListBoardExecutions(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	executions, err := h.executionService.ListBoardExecutions(c.Request.Context(), boardID, parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, executions)
}

// ListRuleExecutions returns recent executions of a single rule
func (h *ExecutionHandler) ListRuleExecutions(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid rule ID")
		return
	}

	executions, err := h.executionService.ListRuleExecutions(c.Request.Context(), ruleID, parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, executions)
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
