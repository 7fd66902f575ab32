package operation

import (
	"context"
	"fmt"
	"strings"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
)

// AddSkill creates a skill and records userID as its creator
func (f *Factory) AddSkill(userID int64, name string, skillType models.SkillType) *Operation[*models.Skill] {
	return New(NameAddSkill, userID, f.global(NameAddSkill, SkillsListAdmins),
		func(ctx context.Context) (*models.Skill, error) {
			skill := &models.Skill{Name: strings.TrimSpace(name), Type: skillType}
			if err := f.skills.Create(ctx, skill, userID); err != nil {
				return nil, err
			}
			return skill, nil
		})
}

// RemoveSkill deletes a skill; its edges and team assignments cascade
func (f *Factory) RemoveSkill(userID, skillID int64) *Operation[struct{}] {
	return New(NameRemoveSkill, userID, f.global(NameRemoveSkill, SkillsListAdmins),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, notFound(f.skills.Delete(ctx, skillID), apperrors.ErrSkillNotFound)
		})
}

// AddSkillPrerequisite makes the skill named prerequisiteName a prerequisite of skillID
func (f *Factory) AddSkillPrerequisite(userID, skillID int64, prerequisiteName string) *Operation[*models.Skill] {
	return New(NameAddSkillPrerequisite, userID, f.global(NameAddSkillPrerequisite, SkillsListAdmins),
		func(ctx context.Context) (*models.Skill, error) {
			prerequisite, err := f.skills.GetByName(ctx, prerequisiteName)
			if err != nil {
				return nil, notFound(err, apperrors.ErrSkillNotFound)
			}
			if prerequisite.ID == skillID {
				return nil, apperrors.NewSkillSelfPrerequisiteError(skillID)
			}
			if _, err := f.skills.GetByID(ctx, skillID); err != nil {
				return nil, notFound(err, apperrors.ErrSkillNotFound)
			}

			existing, err := f.skills.GetSkillPrerequisites(ctx, skillID)
			if err != nil {
				return nil, fmt.Errorf("failed to load prerequisites: %w", err)
			}
			if containsSkill(existing, prerequisite.ID) {
				return nil, apperrors.ErrSkillPrerequisiteExists
			}

			edge := &models.SkillPrerequisite{SkillID: skillID, SkillPrerequisiteID: prerequisite.ID}
			if err := f.skills.AddSkillPrerequisite(ctx, edge); err != nil {
				return nil, err
			}
			return prerequisite, nil
		})
}

// AddSkillContribution makes skillID a prerequisite of the skill named contributionName
func (f *Factory) AddSkillContribution(userID, skillID int64, contributionName string) *Operation[*models.Skill] {
	return New(NameAddSkillContribution, userID, f.global(NameAddSkillContribution, SkillsListAdmins),
		func(ctx context.Context) (*models.Skill, error) {
			contribution, err := f.skills.GetByName(ctx, contributionName)
			if err != nil {
				return nil, notFound(err, apperrors.ErrSkillNotFound)
			}
			if contribution.ID == skillID {
				return nil, apperrors.NewSkillSelfPrerequisiteError(skillID)
			}
			if _, err := f.skills.GetByID(ctx, skillID); err != nil {
				return nil, notFound(err, apperrors.ErrSkillNotFound)
			}

			existing, err := f.skills.GetSkillContributions(ctx, skillID)
			if err != nil {
				return nil, fmt.Errorf("failed to load contributions: %w", err)
			}
			if containsSkill(existing, contribution.ID) {
				return nil, apperrors.ErrSkillContributionExists
			}

			edge := &models.SkillPrerequisite{SkillID: contribution.ID, SkillPrerequisiteID: skillID}
			if err := f.skills.AddSkillPrerequisite(ctx, edge); err != nil {
				if apperrors.IsAlreadyExists(err) {
					return nil, apperrors.ErrSkillContributionExists
				}
				return nil, err
			}
			return contribution, nil
		})
}

// RemoveSkillPrerequisite deletes the edge skillID -> prerequisiteID if present
func (f *Factory) RemoveSkillPrerequisite(userID, skillID, prerequisiteID int64) *Operation[struct{}] {
	return New(NameRemoveSkillPrerequisite, userID, f.global(NameRemoveSkillPrerequisite, SkillsListAdmins),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, f.skills.RemoveSkillPrerequisite(ctx, skillID, prerequisiteID)
		})
}

// RemoveSkillContribution deletes the edge contributionID -> skillID if present
func (f *Factory) RemoveSkillContribution(userID, skillID, contributionID int64) *Operation[struct{}] {
	return New(NameRemoveSkillContribution, userID, f.global(NameRemoveSkillContribution, SkillsListAdmins),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, f.skills.RemoveSkillPrerequisite(ctx, contributionID, skillID)
		})
}

func containsSkill(skills []models.Skill, id int64) bool {
	for _, s := range skills {
		if s.ID == id {
			return true
		}
	}
	return false
}
