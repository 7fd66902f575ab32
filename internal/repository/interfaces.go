package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user and global permission operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User, permissions ...models.GlobalPermission) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetUserGlobalPermissions(ctx context.Context, username string) (models.PermissionSet, error)
	GetUserGlobalPermissionsByID(ctx context.Context, userID int64) (models.PermissionSet, error)
	AddGlobalPermissions(ctx context.Context, username string, permissions []models.GlobalPermission) error
	RemoveGlobalPermissions(ctx context.Context, username string, permissions []models.GlobalPermission) error
}

// SkillRepositoryInterface defines the interface for skills and the prerequisite graph
type SkillRepositoryInterface interface {
	Create(ctx context.Context, skill *models.Skill, creatorID int64) error
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	GetAll(ctx context.Context) ([]models.Skill, error)
	Delete(ctx context.Context, id int64) error
	GetSkillPrerequisites(ctx context.Context, skillID int64) ([]models.Skill, error)
	GetSkillContributions(ctx context.Context, skillID int64) ([]models.Skill, error)
	AddSkillPrerequisite(ctx context.Context, edge *models.SkillPrerequisite) error
	RemoveSkillPrerequisite(ctx context.Context, skillID, prerequisiteID int64) error
}

// TeamRepositoryInterface defines the interface for team operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team, creatorID int64) error
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	Delete(ctx context.Context, id int64) error
}

// TeamMemberRepositoryInterface defines the interface for team membership operations
type TeamMemberRepositoryInterface interface {
	AddTeamMember(ctx context.Context, member *models.TeamMember) error
	RemoveTeamMember(ctx context.Context, teamID, userID int64) error
	GetTeamMember(ctx context.Context, teamID, userID int64) (*models.TeamMember, error)
	GetTeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	SetAdminRights(ctx context.Context, teamID, userID int64, isAdmin bool) error
}

// TeamSkillRepositoryInterface defines the interface for team skills and their upvotes
type TeamSkillRepositoryInterface interface {
	GetTeamSkills(ctx context.Context, teamID int64) ([]models.TeamSkill, error)
	AddTeamSkill(ctx context.Context, teamSkill *models.TeamSkill) error
	RemoveTeamSkill(ctx context.Context, teamID, skillID int64) error
	UpvoteTeamSkill(ctx context.Context, teamSkillID, userID int64) error
	RemoveUpvoteForTeamSkill(ctx context.Context, teamSkillID, userID int64) error
	GetUpvotingUserIDs(ctx context.Context, teamSkillID int64) ([]int64, error)
}

var (
	_ UserRepositoryInterface       = (*UserRepository)(nil)
	_ SkillRepositoryInterface      = (*SkillRepository)(nil)
	_ TeamRepositoryInterface       = (*TeamRepository)(nil)
	_ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)
	_ TeamSkillRepositoryInterface  = (*TeamSkillRepository)(nil)
)
