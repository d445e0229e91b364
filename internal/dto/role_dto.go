package dto

import (
	"time"

	"github.com/google/uuid"

	"board-automation-api/internal/domain"
)

// AssignRoleRequest is the payload for assigning a role on a board
type AssignRoleRequest struct {
	UserID uuid.UUID   `json:"userId" binding:"required"`
	Role   domain.Role `json:"role" binding:"required"`
}

// RoleAssignmentResponse represents a role assignment in API responses
type RoleAssignmentResponse struct {
	UserID    uuid.UUID   `json:"userId"`
	BoardID   uuid.UUID   `json:"boardId"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UserRoleResponse carries a user's role on a board together with the
// role's permission bundle, for UI gating.
type UserRoleResponse struct {
	UserID      uuid.UUID     `json:"userId"`
	BoardID     uuid.UUID     `json:"boardId"`
	Roles       []domain.Role `json:"roles"`
	Permissions []string      `json:"permissions"`
}

// PermissionCheckResponse is the result of a read-only permission check
type PermissionCheckResponse struct {
	UserID     uuid.UUID `json:"userId"`
	BoardID    uuid.UUID `json:"boardId"`
	Permission string    `json:"permission"`
	Allowed    bool      `json:"allowed"`
}
