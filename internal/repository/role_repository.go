package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"board-automation-api/internal/domain"
)

// RoleAssignmentRepository defines the interface for role assignment data access
type RoleAssignmentRepository interface {
	Assign(ctx context.Context, assignment *domain.RoleAssignment) error
	Revoke(ctx context.Context, userID, boardID uuid.UUID) error
	FindByUserAndBoard(ctx context.Context, userID, boardID uuid.UUID) (*domain.RoleAssignment, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.RoleAssignment, error)
}

// roleAssignmentRepositoryImpl is the GORM implementation of RoleAssignmentRepository
type roleAssignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewRoleAssignmentRepository creates a new instance of RoleAssignmentRepository
func NewRoleAssignmentRepository(db *gorm.DB) RoleAssignmentRepository {
	return &roleAssignmentRepositoryImpl{db: db}
}

// Assign replaces any existing assignment for the (user, board) pair with the
// given one. The removal and insert run inside a single transaction so a
// reader never observes two assignments for the pair.
func (r *roleAssignmentRepositoryImpl) Assign(ctx context.Context, assignment *domain.RoleAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND board_id = ?", assignment.UserID, assignment.BoardID).
			Delete(&domain.RoleAssignment{}).Error; err != nil {
			return err
		}
		return tx.Create(assignment).Error
	})
}

// Revoke removes the assignment for the (user, board) pair
func (r *roleAssignmentRepositoryImpl) Revoke(ctx context.Context, userID, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND board_id = ?", userID, boardID).
		Delete(&domain.RoleAssignment{}).Error
}

// FindByUserAndBoard finds the current assignment for the (user, board) pair
func (r *roleAssignmentRepositoryImpl) FindByUserAndBoard(ctx context.Context, userID, boardID uuid.UUID) (*domain.RoleAssignment, error) {
	var assignment domain.RoleAssignment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND board_id = ?", userID, boardID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByBoardID finds all assignments on a board
func (r *roleAssignmentRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.RoleAssignment, error) {
	var assignments []*domain.RoleAssignment
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
