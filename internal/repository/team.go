package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a team and records its creator in the same transaction
func (r *TeamRepository) Create(ctx context.Context, team *models.Team, creatorID int64) error {
	if err := validate(team); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return translateError(err, apperrors.ErrTeamExists)
		}
		creator := models.TeamCreator{UserID: creatorID, TeamID: team.ID}
		if err := validate(&creator); err != nil {
			return err
		}
		return translateError(tx.Create(&creator).Error, apperrors.ErrTeamExists)
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves every team ordered by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Order("name").Find(&teams).Error
	return teams, err
}

// Delete deletes a team; memberships and team skills cascade
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
