package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// AddTeamMember inserts a membership row
func (r *TeamMemberRepository) AddTeamMember(ctx context.Context, member *models.TeamMember) error {
	if err := validate(member); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
	return translateError(err, apperrors.ErrTeamMemberExists)
}

// RemoveTeamMember deletes a membership row
func (r *TeamMemberRepository) RemoveTeamMember(ctx context.Context, teamID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTeamMember retrieves a single membership
func (r *TeamMemberRepository) GetTeamMember(ctx context.Context, teamID, userID int64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetTeamMembers retrieves every member of a team with the user loaded
func (r *TeamMemberRepository) GetTeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("team_id = ?", teamID).
		Order("id").
		Find(&members).Error
	return members, err
}

// SetAdminRights updates is_admin for one membership inside a transaction.
// The row is read and written through the same transaction handle.
func (r *TeamMemberRepository) SetAdminRights(ctx context.Context, teamID, userID int64, isAdmin bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error; err != nil {
			return err
		}
		return tx.Model(&member).Update("is_admin", isAdmin).Error
	})
}
