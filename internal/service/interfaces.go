package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SkillServiceInterface defines the interface for skill service
type SkillServiceInterface interface {
	ListSkills(ctx context.Context) ([]SkillResponse, error)
	GetSkill(ctx context.Context, id int64) (*SkillDetailResponse, error)
	CreateSkill(ctx context.Context, actingUserID int64, req *CreateSkillRequest) (*SkillResponse, error)
	DeleteSkill(ctx context.Context, actingUserID, id int64) error
	GetPrerequisites(ctx context.Context, skillID int64) ([]SkillResponse, error)
	AddPrerequisite(ctx context.Context, actingUserID, skillID int64, req *SkillLinkRequest) (*SkillResponse, error)
	RemovePrerequisite(ctx context.Context, actingUserID, skillID, prerequisiteID int64) error
	GetContributions(ctx context.Context, skillID int64) ([]SkillResponse, error)
	AddContribution(ctx context.Context, actingUserID, skillID int64, req *SkillLinkRequest) (*SkillResponse, error)
	RemoveContribution(ctx context.Context, actingUserID, skillID, contributionID int64) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	GetTeam(ctx context.Context, id int64) (*TeamDetailResponse, error)
	CreateTeam(ctx context.Context, actingUserID int64, req *CreateTeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, actingUserID, id int64) error
	GetMembers(ctx context.Context, teamID int64) ([]TeamMemberResponse, error)
	AddMember(ctx context.Context, actingUserID, teamID int64, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(ctx context.Context, actingUserID, teamID, userID int64) error
	SetAdminRights(ctx context.Context, actingUserID, teamID, userID int64, req *SetAdminRightsRequest) error
	GetTeamSkills(ctx context.Context, teamID int64) ([]TeamSkillResponse, error)
	AddTeamSkill(ctx context.Context, actingUserID, teamID int64, req *AddTeamSkillRequest) (*TeamSkillResponse, error)
	RemoveTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) error
	UpvoteTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) (*TeamSkillResponse, error)
	DownvoteTeamSkill(ctx context.Context, actingUserID, teamID, skillID int64) (*TeamSkillResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserResponse, error)
	GetPermissions(ctx context.Context, username string) (*PermissionsResponse, error)
	AddPermissions(ctx context.Context, actingUserID int64, username string, req *PermissionsRequest) (*PermissionsResponse, error)
	RemovePermissions(ctx context.Context, actingUserID int64, username string, req *PermissionsRequest) (*PermissionsResponse, error)
}

var (
	_ SkillServiceInterface = (*SkillService)(nil)
	_ TeamServiceInterface  = (*TeamService)(nil)
	_ UserServiceInterface  = (*UserService)(nil)
)
