package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the fixed set of board roles. The permission bundle for each role
// is defined at process start and never mutated per-instance.
type Role string

const (
	RoleBoardAdmin  Role = "BoardAdmin"
	RoleNormal      Role = "Normal"
	RoleCommentOnly Role = "CommentOnly"
	RoleNoComments  Role = "NoComments"
)

// Permission strings checked before privileged operations.
const (
	PermBoardsView      = "boards.view"
	PermBoardsEdit      = "boards.edit"
	PermCardsCreate     = "cards.create"
	PermCardsEdit       = "cards.edit"
	PermCardsMove       = "cards.move"
	PermCommentsCreate  = "comments.create"
	PermChecklistsEdit  = "checklists.edit"
	PermLabelsEdit      = "labels.edit"
	PermMembersManage   = "members.manage"
	PermRulesEdit       = "rules.edit"
	PermMailSend        = "mail.send"
)

// rolePermissions is the static permission table. BoardAdmin is listed for
// completeness; permission checks short-circuit for admins regardless.
var rolePermissions = map[Role]map[string]bool{
	RoleBoardAdmin: {
		PermBoardsView:     true,
		PermBoardsEdit:     true,
		PermCardsCreate:    true,
		PermCardsEdit:      true,
		PermCardsMove:      true,
		PermCommentsCreate: true,
		PermChecklistsEdit: true,
		PermLabelsEdit:     true,
		PermMembersManage:  true,
		PermRulesEdit:      true,
		PermMailSend:       true,
	},
	RoleNormal: {
		PermBoardsView:     true,
		PermCardsCreate:    true,
		PermCardsEdit:      true,
		PermCardsMove:      true,
		PermCommentsCreate: true,
		PermChecklistsEdit: true,
		PermLabelsEdit:     true,
		PermMailSend:       true,
	},
	RoleCommentOnly: {
		PermBoardsView:     true,
		PermCommentsCreate: true,
	},
	RoleNoComments: {
		PermBoardsView: true,
	},
}

// IsValid reports whether r is one of the four enumerated roles.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions returns the fixed permission set for the role. The returned
// slice is a copy; callers cannot mutate the table through it.
func (r Role) Permissions() []string {
	perms, ok := rolePermissions[r]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(perms))
	for p := range perms {
		out = append(out, p)
	}
	return out
}

// HasPermission reports whether the role's bundle contains the permission.
// BoardAdmin satisfies every permission check, including strings not present
// in any role's bundle.
func (r Role) HasPermission(permission string) bool {
	if r == RoleBoardAdmin {
		return true
	}
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	return perms[permission]
}

// RoleAssignment binds one user to one role on one board. At most one
// assignment exists per (user, board) pair; assigning a new role supersedes
// the previous one atomically.
type RoleAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_role_assignments_user_id;uniqueIndex:uq_role_assignments_user_board" json:"userId"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_role_assignments_board_id;uniqueIndex:uq_role_assignments_user_board" json:"boardId"`
	Role      Role      `gorm:"type:varchar(50);not null" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for RoleAssignment
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
