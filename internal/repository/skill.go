package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// SkillRepository handles database operations for skills and the prerequisite graph
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create creates a skill and records its creator in the same transaction
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill, creatorID int64) error {
	if skill.Type == "" {
		skill.Type = models.SkillTypeSkill
	}
	if err := validate(skill); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(skill).Error; err != nil {
			return translateError(err, apperrors.ErrSkillExists)
		}
		creator := models.SkillCreator{UserID: creatorID, SkillID: skill.ID}
		if err := validate(&creator); err != nil {
			return err
		}
		return translateError(tx.Create(&creator).Error, apperrors.ErrSkillExists)
	})
}

// GetByID retrieves a skill by ID
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetByName retrieves a skill by its unique name
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetAll retrieves every skill ordered by name
func (r *SkillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("name").Find(&skills).Error
	return skills, err
}

// Delete deletes a skill; edges, team skills and creator rows cascade
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetSkillPrerequisites returns the skills that skillID depends on
func (r *SkillRepository) GetSkillPrerequisites(ctx context.Context, skillID int64) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).
		Joins("JOIN skill_prerequisites ON skill_prerequisites.skill_prerequisite_id = skills.id").
		Where("skill_prerequisites.skill_id = ?", skillID).
		Order("skills.name").
		Find(&skills).Error
	return skills, err
}

// GetSkillContributions returns the skills for which skillID is a prerequisite
func (r *SkillRepository) GetSkillContributions(ctx context.Context, skillID int64) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).
		Joins("JOIN skill_prerequisites ON skill_prerequisites.skill_id = skills.id").
		Where("skill_prerequisites.skill_prerequisite_id = ?", skillID).
		Order("skills.name").
		Find(&skills).Error
	return skills, err
}

// AddSkillPrerequisite inserts a directed prerequisite edge
func (r *SkillRepository) AddSkillPrerequisite(ctx context.Context, edge *models.SkillPrerequisite) error {
	if err := validate(edge); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Create(edge).Error, apperrors.ErrSkillPrerequisiteExists)
}

// RemoveSkillPrerequisite deletes an edge; a missing edge is not an error
func (r *SkillRepository) RemoveSkillPrerequisite(ctx context.Context, skillID, prerequisiteID int64) error {
	return r.db.WithContext(ctx).
		Where("skill_id = ? AND skill_prerequisite_id = ?", skillID, prerequisiteID).
		Delete(&models.SkillPrerequisite{}).Error
}
