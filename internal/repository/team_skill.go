package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamSkillRepository handles database operations for team skills and upvotes
type TeamSkillRepository struct {
	db *gorm.DB
}

// NewTeamSkillRepository creates a new team skill repository
func NewTeamSkillRepository(db *gorm.DB) *TeamSkillRepository {
	return &TeamSkillRepository{db: db}
}

// GetTeamSkills retrieves every skill of a team with its current upvoters
func (r *TeamSkillRepository) GetTeamSkills(ctx context.Context, teamID int64) ([]models.TeamSkill, error) {
	db := r.db.WithContext(ctx)

	var teamSkills []models.TeamSkill
	if err := db.Preload("Skill").Where("team_id = ?", teamID).Order("id").Find(&teamSkills).Error; err != nil {
		return nil, err
	}
	if len(teamSkills) == 0 {
		return teamSkills, nil
	}

	ids := make([]int64, len(teamSkills))
	for i := range teamSkills {
		ids[i] = teamSkills[i].ID
		teamSkills[i].UpvotingUserIDs = []int64{}
	}

	var upvotes []models.TeamSkillUpvote
	if err := db.Where("team_skill_id IN ?", ids).Order("id").Find(&upvotes).Error; err != nil {
		return nil, err
	}

	byTeamSkill := make(map[int64][]int64, len(teamSkills))
	for _, u := range upvotes {
		byTeamSkill[u.TeamSkillID] = append(byTeamSkill[u.TeamSkillID], u.UserID)
	}
	for i := range teamSkills {
		if voters, ok := byTeamSkill[teamSkills[i].ID]; ok {
			teamSkills[i].UpvotingUserIDs = voters
		}
	}
	return teamSkills, nil
}

// AddTeamSkill assigns a skill to a team
func (r *TeamSkillRepository) AddTeamSkill(ctx context.Context, teamSkill *models.TeamSkill) error {
	if err := validate(teamSkill); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(teamSkill).Error
	return translateError(err, apperrors.ErrTeamSkillExists)
}

// RemoveTeamSkill unassigns a skill from a team; upvotes cascade
func (r *TeamSkillRepository) RemoveTeamSkill(ctx context.Context, teamID, skillID int64) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND skill_id = ?", teamID, skillID).
		Delete(&models.TeamSkill{}).Error
}

// UpvoteTeamSkill records one user's upvote
func (r *TeamSkillRepository) UpvoteTeamSkill(ctx context.Context, teamSkillID, userID int64) error {
	upvote := models.TeamSkillUpvote{TeamSkillID: teamSkillID, UserID: userID}
	if err := validate(&upvote); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Create(&upvote).Error, apperrors.ErrTeamSkillUpvoteExists)
}

// RemoveUpvoteForTeamSkill deletes one user's upvote
func (r *TeamSkillRepository) RemoveUpvoteForTeamSkill(ctx context.Context, teamSkillID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("team_skill_id = ? AND user_id = ?", teamSkillID, userID).
		Delete(&models.TeamSkillUpvote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetUpvotingUserIDs lists the users that upvoted a team skill
func (r *TeamSkillRepository) GetUpvotingUserIDs(ctx context.Context, teamSkillID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&models.TeamSkillUpvote{}).
		Where("team_skill_id = ?", teamSkillID).
		Order("id").
		Pluck("user_id", &ids).Error
	return ids, err
}
