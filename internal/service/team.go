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

// TeamService handles business logic for teams, memberships and team skills
type TeamService struct {
	teams      repository.TeamRepositoryInterface
	members    repository.TeamMemberRepositoryInterface
	teamSkills repository.TeamSkillRepositoryInterface
	operations *operation.Factory
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	teams repository.TeamRepositoryInterface,
	members repository.TeamMemberRepositoryInterface,
	teamSkills repository.TeamSkillRepositoryInterface,
	operations *operation.Factory,
	m *metrics.Metrics,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teams:      teams,
		members:    members,
		teamSkills: teamSkills,
		operations: operations,
		metrics:    m,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"platform"`
}

// AddTeamMemberRequest represents the request to add a member to a team
type AddTeamMemberRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40" example:"johndoe"`
}

// SetAdminRightsRequest represents the request to grant or revoke team admin rights
type SetAdminRightsRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required" example:"true"`
}

// AddTeamSkillRequest represents the request to assign a skill to a team
type AddTeamSkillRequest struct {
	SkillName string `json:"skill_name" validate:"required,min=1,max=100" example:"Go"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"platform"`
	CreatedAt string `json:"created_at"`
}

// TeamMemberResponse represents a team membership in API responses
type TeamMemberResponse struct {
	UserID   int64  `json:"user_id" example:"3"`
	Username string `json:"username" example:"johndoe"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// TeamSkillResponse represents a team skill with its live upvotes
type TeamSkillResponse struct {
	SkillID         int64            `json:"skill_id" example:"1"`
	SkillName       string           `json:"skill_name" example:"Go"`
	SkillType       models.SkillType `json:"skill_type" example:"TECHNOLOGY"`
	UpvotingUserIDs []int64          `json:"upvoting_user_ids"`
	Upvotes         int              `json:"upvotes" example:"2"`
}

// TeamDetailResponse is a team with its members and skills
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
	Skills  []TeamSkillResponse  `json:"skills"`
}

// ListTeams returns every team ordered by name
func (s *TeamService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}
	return responses, nil
}

// GetTeam returns a team with its members and skills
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*TeamDetailResponse, error) {
	team, err := s.loadTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.listMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	skills, err := s.listTeamSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TeamDetailResponse{
		TeamResponse: toTeamResponse(team),
		Members:      members,
		Skills:       skills,
	}, nil
}

// CreateTeam runs the AddTeam operation
func (s *TeamService) CreateTeam(ctx context.Context, actingUserID int64, req *CreateTeamRequest) (*TeamResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	team, err := run(ctx, s.metrics, s.operations.AddTeam(actingUserID, req.Name))
	if err != nil {
		return nil, err
	}
	response := toTeamResponse(team)
	return &response, nil
}

// DeleteTeam runs the RemoveTeam operation
func (s *TeamService) DeleteTeam(ctx context.Context, actingUserID, id int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveTeam(actingUserID, id))
	return err
}

// GetMembers lists the members of a team
func (s *TeamService) GetMembers(ctx context.Context, teamID int64) ([]TeamMemberResponse, error) {
	if _, err := s.loadTeam(ctx, teamID); err != nil {
		return nil, err
	}
	return s.listMembers(ctx, teamID)
}

// AddMember runs the AddTeamMember operation
func (s *TeamService) AddMember(ctx context.Context, actingUserID, teamID int64, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	member, err := run(ctx, s.metrics, s.operations.AddTeamMember(actingUserID, teamID, req.Username))
	if err != nil {
		return nil, err
	}
	response := toTeamMemberResponse(member)
	return &response, nil
}

// RemoveMember runs the RemoveTeamMember operation
func (s *TeamService) RemoveMember(ctx context.Context, actingUserID, teamID, userID int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveTeamMember(actingUserID, teamID, userID))
	return err
}

// SetAdminRights runs the SetAdminRights operation
func (s *TeamService) SetAdminRights(ctx context.Context, actingUserID, teamID, userID int64, req *SetAdminRightsRequest) error {
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return err
	}
	_, err := run(ctx, s.metrics, s.operations.SetAdminRights(actingUserID, teamID, userID, *req.IsAdmin))
	return err
}

// GetTeamSkills lists the skills of a team with their upvotes
func (s *TeamService) GetTeamSkills(ctx context.Context, teamID int64) ([]TeamSkillResponse, error) {
	if _, err := s.loadTeam(ctx, teamID); err != nil {
		return nil, err
	}
	return s.listTeamSkills(ctx, teamID)
}

// AddTeamSkill runs the AddTeamSkill operation
func (s *TeamService) AddTeamSkill(ctx context.Context, actingUserID, teamID int64, req *AddTeamSkillRequest) (*TeamSkillResponse, error) {
	req.SkillName = strings.TrimSpace(req.SkillName)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	teamSkill, err := run(ctx, s.metrics, s.operations.AddTeamSkill(actingUserID, teamID, req.SkillName))
	if err != nil {
		return nil, err
	}
	response := toTeamSkillResponse(teamSkill)
	return &response, nil
}

// RemoveTeamSkill runs the RemoveTeamSkill operation
func (s *TeamService) RemoveTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) error {
	_, err := run(ctx, s.metrics, s.operations.RemoveTeamSkill(actingUserID, teamID, skillID))
	return err
}

// UpvoteTeamSkill runs the UpvoteTeamSkill operation
func (s *TeamService) UpvoteTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) (*TeamSkillResponse, error) {
	teamSkill, err := run(ctx, s.metrics, s.operations.UpvoteTeamSkill(actingUserID, teamID, skillID))
	if err != nil {
		return nil, err
	}
	response := toTeamSkillResponse(teamSkill)
	return &response, nil
}

// DownvoteTeamSkill runs the DownvoteTeamSkill operation
func (s *TeamService) DownvoteTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) (*TeamSkillResponse, error) {
	teamSkill, err := run(ctx, s.metrics, s.operations.DownvoteTeamSkill(actingUserID, teamID, skillID))
	if err != nil {
		return nil, err
	}
	response := toTeamSkillResponse(teamSkill)
	return &response, nil
}

func (s *TeamService) loadTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) listMembers(ctx context.Context, teamID int64) ([]TeamMemberResponse, error) {
	members, err := s.members.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = toTeamMemberResponse(&members[i])
	}
	return responses, nil
}

func (s *TeamService) listTeamSkills(ctx context.Context, teamID int64) ([]TeamSkillResponse, error) {
	teamSkills, err := s.teamSkills.GetTeamSkills(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team skills: %w", err)
	}
	responses := make([]TeamSkillResponse, len(teamSkills))
	for i := range teamSkills {
		responses[i] = toTeamSkillResponse(&teamSkills[i])
	}
	return responses, nil
}

func toTeamResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamMemberResponse(member *models.TeamMember) TeamMemberResponse {
	response := TeamMemberResponse{
		UserID:  member.UserID,
		IsAdmin: member.IsAdmin,
	}
	if member.User != nil {
		response.Username = member.User.Username
	}
	return response
}

func toTeamSkillResponse(teamSkill *models.TeamSkill) TeamSkillResponse {
	voters := teamSkill.UpvotingUserIDs
	if voters == nil {
		voters = []int64{}
	}
	response := TeamSkillResponse{
		SkillID:         teamSkill.SkillID,
		UpvotingUserIDs: voters,
		Upvotes:         len(voters),
	}
	if teamSkill.Skill != nil {
		response.SkillName = teamSkill.Skill.Name
		response.SkillType = teamSkill.Skill.Type
	}
	return response
}
