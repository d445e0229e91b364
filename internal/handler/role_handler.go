package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board-automation-api/internal/dto"
	"board-automation-api/internal/response"
	"board-automation-api/internal/service"
)

type RoleHandler struct {
	permissionService service.PermissionService
}

func NewRoleHandler(permissionService service.PermissionService) *RoleHandler {
	return &RoleHandler{
		permissionService: permissionService,
	}
}

// AssignRole assigns a role to a user on a board, replacing any previous
// assignment for the same pair.
func (h *RoleHandler) AssignRole(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	assignment, err := h.permissionService.AssignRole(c.Request.Context(), req.UserID, boardID, req.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, assignment)
}

// RevokeRole removes a user's role assignment on a board
func (h *RoleHandler) RevokeRole(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	if err := h.permissionService.RevokeRole(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// GetUserRole returns a user's role on a board with the role's permissions
func (h *RoleHandler) GetUserRole(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	roles, err := h.permissionService.GetUserRoles(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	permissions := make([]string, 0)
	for _, role := range roles {
		perms, err := h.permissionService.GetPermissions(role)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		permissions = append(permissions, perms...)
	}

	response.SendSuccess(c, http.StatusOK, &dto.UserRoleResponse{
		UserID:      userID,
		BoardID:     boardID,
		Roles:       roles,
		Permissions: permissions,
	})
}

// ListAssignments returns all role assignments on a board
func (h *RoleHandler) ListAssignments(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	assignments, err := h.permissionService.ListBoardAssignments(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, assignments)
}

// CheckPermission answers whether a user holds a permission on a board
func (h *RoleHandler) CheckPermission(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	permission := c.Query("permission")
	if permission == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Permission is required")
		return
	}

	allowed, err := h.permissionService.HasPermission(c.Request.Context(), userID, boardID, permission)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, &dto.PermissionCheckResponse{
		UserID:     userID,
		BoardID:    boardID,
		Permission: permission,
		Allowed:    allowed,
	})
}
