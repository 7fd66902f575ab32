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

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	repo    *TeamRepository
	seed    *testutils.Seeder
	creator *models.User
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewTeamRepository(suite.db)
	suite.seed = testutils.NewSeeder(suite.T(), suite.db)
	suite.creator = suite.seed.User(models.GlobalPermissionTeamsListAdmin)
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := &models.Team{Name: "platform"}

	err := suite.repo.Create(suite.ctx, team, suite.creator.ID)

	suite.NoError(err)
	suite.NotZero(team.ID)
	var creator models.TeamCreator
	suite.NoError(suite.db.First(&creator, "team_id = ?", team.ID).Error)
	suite.Equal(suite.creator.ID, creator.UserID)
}

// TestCreateDuplicateName tests creating a team with a taken name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.ctx, &models.Team{Name: "platform"}, suite.creator.ID))

	err := suite.repo.Create(suite.ctx, &models.Team{Name: "platform"}, suite.creator.ID)

	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

// TestGetByIDAndName tests both lookups
func (suite *TeamRepositoryTestSuite) TestGetByIDAndName() {
	team := suite.seed.Team("payments")

	byID, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Equal("payments", byID.Name)

	byName, err := suite.repo.GetByName(suite.ctx, "payments")
	suite.NoError(err)
	suite.Equal(team.ID, byName.ID)

	_, err = suite.repo.GetByID(suite.ctx, team.ID+100)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascades tests that memberships, team skills and upvotes go with the team
func (suite *TeamRepositoryTestSuite) TestDeleteCascades() {
	team := suite.seed.Team("payments")
	skill := suite.seed.Skill("Go")
	suite.seed.Member(team.ID, suite.creator.ID, true)
	teamSkill := suite.seed.TeamSkill(team.ID, skill.ID)
	suite.seed.Upvote(teamSkill.ID, suite.creator.ID)

	suite.NoError(suite.repo.Delete(suite.ctx, team.ID))

	for _, model := range []interface{}{&models.TeamMember{}, &models.TeamSkill{}, &models.TeamSkillUpvote{}, &models.Team{}} {
		var count int64
		suite.NoError(suite.db.Model(model).Count(&count).Error)
		suite.Zero(count)
	}
}

// TestDeleteMissing tests deleting an unknown team
func (suite *TeamRepositoryTestSuite) TestDeleteMissing() {
	suite.ErrorIs(suite.repo.Delete(suite.ctx, 31337), gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
