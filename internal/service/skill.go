package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/metrics"
	"skills-tracker-backend/internal/operation"
	"skills-tracker-backend/internal/repository"
	"skills-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SkillService handles business logic for skills and their prerequisite graph
type SkillService struct {
	skills     repository.SkillRepositoryInterface
	operations *operation.Factory
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewSkillService creates a new skill service
func NewSkillService(skills repository.SkillRepositoryInterface, operations *operation.Factory, m *metrics.Metrics, validator *validator.Validate) *SkillService {
	return &SkillService{
		skills:     skills,
		operations: operations,
		metrics:    m,
		validator:  validator,
	}
}

// CreateSkillRequest represents the request to create a skill
type CreateSkillRequest struct {
	Name string           `json:"name" validate:"required,min=1,max=100" example:"Go"`
	Type models.SkillType `json:"type" validate:"omitempty,oneof=SKILL TECHNOLOGY" example:"TECHNOLOGY"`
}

// SkillLinkRequest names the skill at the other end of a prerequisite edge
type SkillLinkRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Concurrency"`
}

// SkillResponse represents a skill in API responses
type SkillResponse struct {
	ID        int64            `json:"id" example:"1"`
	Name      string           `json:"name" example:"Go"`
	Type      models.SkillType `json:"type" example:"TECHNOLOGY"`
	CreatedAt string           `json:"created_at"`
}

// SkillDetailResponse is a skill together with both ends of its edges
type SkillDetailResponse struct {
	SkillResponse
	Prerequisites []SkillResponse `json:"prerequisites"`
	Contributions []SkillResponse `json:"contributions"`
}

// ListSkills returns every skill ordered by name
func (s *SkillService) ListSkills(ctx context.Context) ([]SkillResponse, error) {
	skills, err := s.skills.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	return toSkillResponses(skills), nil
}

// GetSkill returns a skill with its prerequisites and contributions
func (s *SkillService) GetSkill(ctx context.Context, id int64) (*SkillDetailResponse, error) {
	skill, err := s.loadSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	prerequisites, err := s.skills.GetSkillPrerequisites(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get prerequisites: %w", err)
	}
	contributions, err := s.skills.GetSkillContributions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}

	return &SkillDetailResponse{
		SkillResponse: toSkillResponse(skill),
		Prerequisites: toSkillResponses(prerequisites),
		Contributions: toSkillResponses(contributions),
	}, nil
}

// CreateSkill runs the AddSkill operation
func (s *SkillService) CreateSkill(ctx context.Context, actingUserID int64, req *CreateSkillRequest) (*SkillResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	skillType := req.Type
	if skillType == "" {
		skillType = models.SkillTypeSkill
	}

	skill, err := run(ctx, s.metrics, s.operations.AddSkill(actingUserID, req.Name, skillType))
	if err != nil {
		return nil, err
	}
	response := toSkillResponse(skill)
	return &response, nil
}

// DeleteSkill runs the RemoveSkill operation
func (s *SkillService) DeleteSkill(ctx context.Context, actingUserID, id int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveSkill(actingUserID, id))
	return err
}

// GetPrerequisites returns the skills skillID depends on
func (s *SkillService) GetPrerequisites(ctx context.Context, skillID int64) ([]SkillResponse, error) {
	if _, err := s.loadSkill(ctx, skillID); err != nil {
		return nil, err
	}
	skills, err := s.skills.GetSkillPrerequisites(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prerequisites: %w", err)
	}
	return toSkillResponses(skills), nil
}

// AddPrerequisite runs the AddSkillPrerequisite operation
func (s *SkillService) AddPrerequisite(ctx context.Context, actingUserID, skillID int64, req *SkillLinkRequest) (*SkillResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	skill, err := run(ctx, s.metrics, s.operations.AddSkillPrerequisite(actingUserID, skillID, req.Name))
	if err != nil {
		return nil, err
	}
	response := toSkillResponse(skill)
	return &response, nil
}

// RemovePrerequisite runs the RemoveSkillPrerequisite operation
func (s *SkillService) RemovePrerequisite(ctx context.Context, actingUserID, skillID, prerequisiteID int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveSkillPrerequisite(actingUserID, skillID, prerequisiteID))
	return err
}

// GetContributions returns the skills that depend on skillID
func (s *SkillService) GetContributions(ctx context.Context, skillID int64) ([]SkillResponse, error) {
	if _, err := s.loadSkill(ctx, skillID); err != nil {
		return nil, err
	}
	skills, err := s.skills.GetSkillContributions(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}
	return toSkillResponses(skills), nil
}

// AddContribution runs the AddSkillContribution operation
func (s *SkillService) AddContribution(ctx context.Context, actingUserID, skillID int64, req *SkillLinkRequest) (*SkillResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	skill, err := run(ctx, s.metrics, s.operations.AddSkillContribution(actingUserID, skillID, req.Name))
	if err != nil {
		return nil, err
	}
	response := toSkillResponse(skill)
	return &response, nil
}

// RemoveContribution runs the RemoveSkillContribution operation
func (s *SkillService) RemoveContribution(ctx context.Context, actingUserID, skillID, contributionID int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveSkillContribution(actingUserID, skillID, contributionID))
	return err
}

func (s *SkillService) loadSkill(ctx context.Context, id int64) (*models.Skill, error) {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

func toSkillResponse(skill *models.Skill) SkillResponse {
	return SkillResponse{
		ID:        skill.ID,
		Name:      skill.Name,
		Type:      skill.Type,
		CreatedAt: skill.CreatedAt.Format(time.RFC3339),
	}
}

func toSkillResponses(skills []models.Skill) []SkillResponse {
	responses := make([]SkillResponse, len(skills))
	for i := range skills {
		responses[i] = toSkillResponse(&skills[i])
	}
	return responses
}
