package operation

import (
	"context"
	"fmt"
	"strings"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
)

// AddTeam creates a team and records userID as its creator
func (f *Factory) AddTeam(userID int64, name string) *Operation[*models.Team] {
	return New(NameAddTeam, userID, f.global(NameAddTeam, TeamsListAdmins),
		func(ctx context.Context) (*models.Team, error) {
			team := &models.Team{Name: strings.TrimSpace(name)}
			if err := f.teams.Create(ctx, team, userID); err != nil {
				return nil, err
			}
			return team, nil
		})
}

// RemoveTeam deletes a team; memberships and team skills cascade
func (f *Factory) RemoveTeam(userID, teamID int64) *Operation[struct{}] {
	return New(NameRemoveTeam, userID, f.global(NameRemoveTeam, TeamsListAdmins),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, notFound(f.teams.Delete(ctx, teamID), apperrors.ErrTeamNotFound)
		})
}

// AddTeamMember adds the user named username to teamID
func (f *Factory) AddTeamMember(userID, teamID int64, username string) *Operation[*models.TeamMember] {
	return New(NameAddTeamMember, userID, f.teamScoped(NameAddTeamMember, teamID),
		func(ctx context.Context) (*models.TeamMember, error) {
			if _, err := f.teams.GetByID(ctx, teamID); err != nil {
				return nil, notFound(err, apperrors.ErrTeamNotFound)
			}
			user, err := f.users.GetByUsername(ctx, username)
			if err != nil {
				return nil, notFound(err, apperrors.ErrUserNotFound)
			}

			member := &models.TeamMember{TeamID: teamID, UserID: user.ID}
			if err := f.members.AddTeamMember(ctx, member); err != nil {
				return nil, err
			}
			member.User = user
			return member, nil
		})
}

// RemoveTeamMember removes memberID from teamID
func (f *Factory) RemoveTeamMember(userID, teamID, memberID int64) *Operation[struct{}] {
	return New(NameRemoveTeamMember, userID, f.teamScoped(NameRemoveTeamMember, teamID),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, notFound(f.members.RemoveTeamMember(ctx, teamID, memberID), apperrors.ErrTeamMemberNotFound)
		})
}

// SetAdminRights sets the admin flag of memberID in teamID
func (f *Factory) SetAdminRights(userID, teamID, memberID int64, isAdmin bool) *Operation[struct{}] {
	return New(NameSetAdminRights, userID, f.teamScoped(NameSetAdminRights, teamID),
		func(ctx context.Context) (struct{}, error) {
			err := f.members.SetAdminRights(ctx, teamID, memberID, isAdmin)
			return struct{}{}, notFound(err, apperrors.ErrTeamMemberNotFound)
		})
}

// AddTeamSkill records that teamID knows the skill named skillName
func (f *Factory) AddTeamSkill(userID, teamID int64, skillName string) *Operation[*models.TeamSkill] {
	return New(NameAddTeamSkill, userID, f.teamScoped(NameAddTeamSkill, teamID),
		func(ctx context.Context) (*models.TeamSkill, error) {
			if _, err := f.teams.GetByID(ctx, teamID); err != nil {
				return nil, notFound(err, apperrors.ErrTeamNotFound)
			}
			skill, err := f.skills.GetByName(ctx, skillName)
			if err != nil {
				return nil, notFound(err, apperrors.ErrSkillNotFound)
			}

			existing, err := f.teamSkills.GetTeamSkills(ctx, teamID)
			if err != nil {
				return nil, fmt.Errorf("failed to load team skills: %w", err)
			}
			if findTeamSkill(existing, skill.ID) != nil {
				return nil, apperrors.ErrTeamSkillExists
			}

			teamSkill := &models.TeamSkill{TeamID: teamID, SkillID: skill.ID}
			if err := f.teamSkills.AddTeamSkill(ctx, teamSkill); err != nil {
				return nil, err
			}
			teamSkill.Skill = skill
			teamSkill.UpvotingUserIDs = []int64{}
			return teamSkill, nil
		})
}

// RemoveTeamSkill unassigns skillID from teamID if assigned
func (f *Factory) RemoveTeamSkill(userID, teamID, skillID int64) *Operation[struct{}] {
	return New(NameRemoveTeamSkill, userID, f.teamScoped(NameRemoveTeamSkill, teamID),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, f.teamSkills.RemoveTeamSkill(ctx, teamID, skillID)
		})
}

// UpvoteTeamSkill endorses teamID's knowledge of skillID on behalf of userID
func (f *Factory) UpvoteTeamSkill(userID, teamID, skillID int64) *Operation[*models.TeamSkill] {
	return New(NameUpvoteTeamSkill, userID, f.global(NameUpvoteTeamSkill, Voters),
		func(ctx context.Context) (*models.TeamSkill, error) {
			teamSkill, err := f.loadTeamSkill(ctx, teamID, skillID)
			if err != nil {
				return nil, err
			}
			for _, id := range teamSkill.UpvotingUserIDs {
				if id == userID {
					return nil, apperrors.ErrTeamSkillUpvoteExists
				}
			}
			if err := f.teamSkills.UpvoteTeamSkill(ctx, teamSkill.ID, userID); err != nil {
				return nil, err
			}
			return f.refreshUpvotes(ctx, teamSkill)
		})
}

// DownvoteTeamSkill withdraws userID's upvote on teamID's knowledge of skillID
func (f *Factory) DownvoteTeamSkill(userID, teamID, skillID int64) *Operation[*models.TeamSkill] {
	return New(NameDownvoteTeamSkill, userID, f.global(NameDownvoteTeamSkill, Voters),
		func(ctx context.Context) (*models.TeamSkill, error) {
			teamSkill, err := f.loadTeamSkill(ctx, teamID, skillID)
			if err != nil {
				return nil, err
			}
			err = f.teamSkills.RemoveUpvoteForTeamSkill(ctx, teamSkill.ID, userID)
			if err != nil {
				return nil, notFound(err, apperrors.ErrTeamSkillUpvoteNotFound)
			}
			return f.refreshUpvotes(ctx, teamSkill)
		})
}

func (f *Factory) loadTeamSkill(ctx context.Context, teamID, skillID int64) (*models.TeamSkill, error) {
	teamSkills, err := f.teamSkills.GetTeamSkills(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team skills: %w", err)
	}
	teamSkill := findTeamSkill(teamSkills, skillID)
	if teamSkill == nil {
		return nil, apperrors.ErrTeamSkillNotFound
	}
	return teamSkill, nil
}

func (f *Factory) refreshUpvotes(ctx context.Context, teamSkill *models.TeamSkill) (*models.TeamSkill, error) {
	ids, err := f.teamSkills.GetUpvotingUserIDs(ctx, teamSkill.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load upvotes: %w", err)
	}
	teamSkill.UpvotingUserIDs = ids
	return teamSkill, nil
}

func findTeamSkill(teamSkills []models.TeamSkill, skillID int64) *models.TeamSkill {
	for i := range teamSkills {
		if teamSkills[i].SkillID == skillID {
			return &teamSkills[i]
		}
	}
	return nil
}
