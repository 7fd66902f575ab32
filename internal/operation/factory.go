package operation

import (
	"errors"

	"skills-tracker-backend/internal/database/models"
	"skills-tracker-backend/internal/repository"

	"gorm.io/gorm"
)

// Operation names, used as log fields and metric labels
const (
	NameAddSkill                = "add_skill"
	NameRemoveSkill             = "remove_skill"
	NameAddSkillPrerequisite    = "add_skill_prerequisite"
	NameAddSkillContribution    = "add_skill_contribution"
	NameRemoveSkillPrerequisite = "remove_skill_prerequisite"
	NameRemoveSkillContribution = "remove_skill_contribution"
	NameAddTeam                 = "add_team"
	NameRemoveTeam              = "remove_team"
	NameAddTeamMember           = "add_team_member"
	NameRemoveTeamMember        = "remove_team_member"
	NameSetAdminRights          = "set_admin_rights"
	NameAddTeamSkill            = "add_team_skill"
	NameRemoveTeamSkill         = "remove_team_skill"
	NameUpvoteTeamSkill         = "upvote_team_skill"
	NameDownvoteTeamSkill       = "downvote_team_skill"
	NameAddGlobalPermissions    = "add_global_permissions"
	NameRemoveGlobalPermissions = "remove_global_permissions"
)

// Sufficient global permission sets per operation family
var (
	SkillsListAdmins = []models.GlobalPermission{
		models.GlobalPermissionAdmin,
		models.GlobalPermissionSkillsListAdmin,
	}
	TeamsListAdmins = []models.GlobalPermission{
		models.GlobalPermissionAdmin,
		models.GlobalPermissionTeamsListAdmin,
	}
	Voters = []models.GlobalPermission{
		models.GlobalPermissionAdmin,
		models.GlobalPermissionSkillsListAdmin,
		models.GlobalPermissionTeamsListAdmin,
		models.GlobalPermissionReader,
	}
	Admins = []models.GlobalPermission{
		models.GlobalPermissionAdmin,
	}
)

// Factory builds the concrete operations over a fixed set of stores
type Factory struct {
	users      repository.UserRepositoryInterface
	skills     repository.SkillRepositoryInterface
	teams      repository.TeamRepositoryInterface
	members    repository.TeamMemberRepositoryInterface
	teamSkills repository.TeamSkillRepositoryInterface
}

// NewFactory creates a new operation factory
func NewFactory(
	users repository.UserRepositoryInterface,
	skills repository.SkillRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	members repository.TeamMemberRepositoryInterface,
	teamSkills repository.TeamSkillRepositoryInterface,
) *Factory {
	return &Factory{
		users:      users,
		skills:     skills,
		teams:      teams,
		members:    members,
		teamSkills: teamSkills,
	}
}

func (f *Factory) global(operation string, sufficient []models.GlobalPermission) Authorizer {
	return NewGlobalPermissionAuthorizer(f.users, operation, sufficient...)
}

// teamScoped accepts the global teams-list admins and the admins of teamID
func (f *Factory) teamScoped(operation string, teamID int64) Authorizer {
	return AnyOf(
		f.global(operation, TeamsListAdmins),
		NewTeamAdminAuthorizer(f.members, operation, teamID),
	)
}

// notFound replaces a missing-row error with the typed sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
