package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
	"board-automation-api/internal/dto"
	"board-automation-api/internal/metrics"
	"board-automation-api/internal/repository"
	"board-automation-api/internal/response"
)

// roleCacheTTL bounds staleness of cached role lookups; assign/revoke also
// invalidate eagerly.
const roleCacheTTL = 5 * time.Minute

// PermissionService defines the interface for role and permission logic
type PermissionService interface {
	GetPermissions(role domain.Role) ([]string, error)
	HasPermission(ctx context.Context, userID, boardID uuid.UUID, permission string) (bool, error)
	AssignRole(ctx context.Context, userID, boardID uuid.UUID, role domain.Role) (*dto.RoleAssignmentResponse, error)
	RevokeRole(ctx context.Context, userID, boardID uuid.UUID) error
	GetUserRoles(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Role, error)
	ListBoardAssignments(ctx context.Context, boardID uuid.UUID) ([]*dto.RoleAssignmentResponse, error)
}

// permissionServiceImpl is the implementation of PermissionService
type permissionServiceImpl struct {
	roleRepo repository.RoleAssignmentRepository
	redis    *redis.Client
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewPermissionService creates a new instance of PermissionService. The redis
// client is optional; without it every lookup goes to the repository.
func NewPermissionService(
	roleRepo repository.RoleAssignmentRepository,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) PermissionService {
	return &permissionServiceImpl{
		roleRepo: roleRepo,
		redis:    redisClient,
		metrics:  m,
		logger:   logger,
	}
}

// GetPermissions returns the fixed permission set for a role name
func (s *permissionServiceImpl) GetPermissions(role domain.Role) ([]string, error) {
	if !role.IsValid() {
		return nil, response.NewAppError(response.ErrCodeUnknownRole, "Unknown role", string(role))
	}
	return role.Permissions(), nil
}

// HasPermission resolves the user's current role on the board and checks the
// role's permission bundle. BoardAdmin short-circuits every check. A user
// with no assignment has no permissions.
func (s *permissionServiceImpl) HasPermission(ctx context.Context, userID, boardID uuid.UUID, permission string) (bool, error) {
	role, found, err := s.resolveRole(ctx, userID, boardID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return role.HasPermission(permission), nil
}

// AssignRole atomically supersedes any prior assignment for the (user, board)
// pair. Unknown role names are rejected, never coerced.
func (s *permissionServiceImpl) AssignRole(ctx context.Context, userID, boardID uuid.UUID, role domain.Role) (*dto.RoleAssignmentResponse, error) {
	if !role.IsValid() {
		return nil, response.NewAppError(response.ErrCodeInvalidRole, "Invalid role", string(role))
	}

	assignment := &domain.RoleAssignment{
		UserID:  userID,
		BoardID: boardID,
		Role:    role,
	}
	if err := s.roleRepo.Assign(ctx, assignment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to assign role", err.Error())
	}

	s.invalidateRoleCache(ctx, userID, boardID)

	if s.metrics != nil {
		s.metrics.IncrementRoleAssigned()
	}
	s.logger.Info("Role assigned",
		zap.String("user_id", userID.String()),
		zap.String("board_id", boardID.String()),
		zap.String("role", string(role)),
	)

	return &dto.RoleAssignmentResponse{
		UserID:    assignment.UserID,
		BoardID:   assignment.BoardID,
		Role:      assignment.Role,
		CreatedAt: assignment.CreatedAt,
	}, nil
}

// RevokeRole removes the assignment; subsequent permission checks for the
// pair return false for all permissions.
func (s *permissionServiceImpl) RevokeRole(ctx context.Context, userID, boardID uuid.UUID) error {
	if err := s.roleRepo.Revoke(ctx, userID, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to revoke role", err.Error())
	}
	s.invalidateRoleCache(ctx, userID, boardID)
	return nil
}

// GetUserRoles returns the user's role on the board as a list of zero or one
// entries.
func (s *permissionServiceImpl) GetUserRoles(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Role, error) {
	role, found, err := s.resolveRole(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Role{}, nil
	}
	return []domain.Role{role}, nil
}

// ListBoardAssignments lists all role assignments on a board
func (s *permissionServiceImpl) ListBoardAssignments(ctx context.Context, boardID uuid.UUID) ([]*dto.RoleAssignmentResponse, error) {
	assignments, err := s.roleRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list role assignments", err.Error())
	}

	responses := make([]*dto.RoleAssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = &dto.RoleAssignmentResponse{
			UserID:    a.UserID,
			BoardID:   a.BoardID,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		}
	}
	return responses, nil
}

// resolveRole looks up the user's role on the board, consulting the cache
// first. The second return reports whether an assignment exists.
func (s *permissionServiceImpl) resolveRole(ctx context.Context, userID, boardID uuid.UUID) (domain.Role, bool, error) {
	key := roleCacheKey(userID, boardID)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			if cached == "" {
				return "", false, nil
			}
			role := domain.Role(cached)
			if role.IsValid() {
				return role, true, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Role cache lookup failed", zap.Error(err))
		}
	}

	assignment, err := s.roleRepo.FindByUserAndBoard(ctx, userID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cacheRole(ctx, key, "")
			return "", false, nil
		}
		return "", false, response.NewAppError(response.ErrCodeInternal, "Failed to resolve role", err.Error())
	}

	s.cacheRole(ctx, key, string(assignment.Role))
	return assignment.Role, true, nil
}

func (s *permissionServiceImpl) cacheRole(ctx context.Context, key, value string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, roleCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to populate role cache", zap.Error(err))
	}
}

func (s *permissionServiceImpl) invalidateRoleCache(ctx context.Context, userID, boardID uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, roleCacheKey(userID, boardID)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate role cache", zap.Error(err))
	}
}

func roleCacheKey(userID, boardID uuid.UUID) string {
	return fmt.Sprintf("role:%s:%s", boardID, userID)
}
