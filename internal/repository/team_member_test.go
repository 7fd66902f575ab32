package repository

import (
	"context"
	"testing"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	repo *TeamMemberRepository
	seed *testutils.Seeder
	team *models.Team
	user *models.User
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewTeamMemberRepository(suite.db)
	suite.seed = testutils.NewSeeder(suite.T(), suite.db)
	suite.team = suite.seed.Team("platform")
	suite.user = suite.seed.User(models.GlobalPermissionReader)
}

// TestAddTeamMember tests adding a member who defaults to non-admin
func (suite *TeamMemberRepositoryTestSuite) TestAddTeamMember() {
	member := &models.TeamMember{TeamID: suite.team.ID, UserID: suite.user.ID}

	suite.NoError(suite.repo.AddTeamMember(suite.ctx, member))

	stored, err := suite.repo.GetTeamMember(suite.ctx, suite.team.ID, suite.user.ID)
	suite.NoError(err)
	suite.False(stored.IsAdmin)
}

// TestAddTeamMemberDuplicate tests the unique (team, user) pair
func (suite *TeamMemberRepositoryTestSuite) TestAddTeamMemberDuplicate() {
	suite.seed.Member(suite.team.ID, suite.user.ID, false)

	err := suite.repo.AddTeamMember(suite.ctx, &models.TeamMember{TeamID: suite.team.ID, UserID: suite.user.ID})

	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
}

// TestAddTeamMemberUnknownUser tests the user foreign key
func (suite *TeamMemberRepositoryTestSuite) TestAddTeamMemberUnknownUser() {
	err := suite.repo.AddTeamMember(suite.ctx, &models.TeamMember{TeamID: suite.team.ID, UserID: 999})

	suite.True(apperrors.IsValidation(err))
}

// TestRemoveTeamMember tests removal and the missing-member case
func (suite *TeamMemberRepositoryTestSuite) TestRemoveTeamMember() {
	suite.seed.Member(suite.team.ID, suite.user.ID, false)

	suite.NoError(suite.repo.RemoveTeamMember(suite.ctx, suite.team.ID, suite.user.ID))
	suite.ErrorIs(suite.repo.RemoveTeamMember(suite.ctx, suite.team.ID, suite.user.ID), gorm.ErrRecordNotFound)
}

// TestGetTeamMembers tests that members come back with their user loaded
func (suite *TeamMemberRepositoryTestSuite) TestGetTeamMembers() {
	other := suite.seed.User()
	suite.seed.Member(suite.team.ID, suite.user.ID, true)
	suite.seed.Member(suite.team.ID, other.ID, false)

	members, err := suite.repo.GetTeamMembers(suite.ctx, suite.team.ID)

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Require().NotNil(members[0].User)
	suite.Equal(suite.user.Username, members[0].User.Username)
	suite.True(members[0].IsAdmin)
	suite.False(members[1].IsAdmin)
}

// TestSetAdminRightsToggle tests setting the flag on and off again
func (suite *TeamMemberRepositoryTestSuite) TestSetAdminRightsToggle() {
	suite.seed.Member(suite.team.ID, suite.user.ID, false)

	suite.NoError(suite.repo.SetAdminRights(suite.ctx, suite.team.ID, suite.user.ID, true))
	member, err := suite.repo.GetTeamMember(suite.ctx, suite.team.ID, suite.user.ID)
	suite.NoError(err)
	suite.True(member.IsAdmin)

	suite.NoError(suite.repo.SetAdminRights(suite.ctx, suite.team.ID, suite.user.ID, false))
	member, err = suite.repo.GetTeamMember(suite.ctx, suite.team.ID, suite.user.ID)
	suite.NoError(err)
	suite.False(member.IsAdmin)
}

// TestSetAdminRightsNotMember tests that a missing membership fails without writing
func (suite *TeamMemberRepositoryTestSuite) TestSetAdminRightsNotMember() {
	err := suite.repo.SetAdminRights(suite.ctx, suite.team.ID, suite.user.ID, true)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	var count int64
	suite.NoError(suite.db.Model(&models.TeamMember{}).Count(&count).Error)
	suite.Zero(count)
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
