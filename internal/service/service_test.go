package service_test

import (
	"context"
	"testing"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/metrics"
	"skills-tracker-backend/internal/operation"
	"skills-tracker-backend/internal/repository"
	"skills-tracker-backend/internal/service"
	"skills-tracker-backend/internal/testutils"
	"skills-tracker-backend/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ServiceTestSuite exercises the services against real stores on SQLite
type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	seed    *testutils.Seeder
	metrics *metrics.Metrics
	skills  *service.SkillService
	teams   *service.TeamService
	users   *service.UserService
	admin   *models.User
	reader  *models.User
}

// SetupTest sets up the test suite
func (suite *ServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	db := testutils.NewSQLiteDB(suite.T())
	suite.seed = testutils.NewSeeder(suite.T(), db)
	suite.metrics = metrics.NewMetrics(prometheus.NewRegistry())

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	teamSkillRepo := repository.NewTeamSkillRepository(db)
	factory := operation.NewFactory(userRepo, skillRepo, teamRepo, memberRepo, teamSkillRepo)
	v := validation.New()

	suite.skills = service.NewSkillService(skillRepo, factory, suite.metrics, v)
	suite.teams = service.NewTeamService(teamRepo, memberRepo, teamSkillRepo, factory, suite.metrics, v)
	suite.users = service.NewUserService(userRepo, factory, suite.metrics, v)

	suite.admin = suite.seed.User(models.GlobalPermissionAdmin)
	suite.reader = suite.seed.User(models.GlobalPermissionReader)
}

func (suite *ServiceTestSuite) outcomes(name, outcome string) float64 {
	return testutil.ToFloat64(suite.metrics.OperationsTotal.WithLabelValues(name, outcome))
}

// TestCreateSkill tests creation, defaults and metrics
func (suite *ServiceTestSuite) TestCreateSkill() {
	skill, err := suite.skills.CreateSkill(suite.ctx, suite.admin.ID, &service.CreateSkillRequest{Name: "  Go  "})

	suite.Require().NoError(err)
	suite.Equal("Go", skill.Name)
	suite.Equal(models.SkillTypeSkill, skill.Type)
	suite.Equal(1.0, suite.outcomes(operation.NameAddSkill, metrics.OutcomeSuccess))
}

// TestCreateSkillValidation tests DTO validation before any operation runs
func (suite *ServiceTestSuite) TestCreateSkillValidation() {
	testCases := []struct {
		name    string
		request *service.CreateSkillRequest
	}{
		{name: "blank name", request: &service.CreateSkillRequest{Name: "   "}},
		{name: "unknown type", request: &service.CreateSkillRequest{Name: "Go", Type: "LANGUAGE"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.skills.CreateSkill(suite.ctx, suite.admin.ID, tc.request)
			suite.True(apperrors.IsValidation(err))
		})
	}
	suite.Zero(suite.outcomes(operation.NameAddSkill, metrics.OutcomeSuccess))
}

// TestCreateSkillUnauthorized tests that a reader cannot create skills
func (suite *ServiceTestSuite) TestCreateSkillUnauthorized() {
	_, err := suite.skills.CreateSkill(suite.ctx, suite.reader.ID, &service.CreateSkillRequest{Name: "Go"})

	suite.True(apperrors.IsAuthorization(err))
	suite.Equal(1.0, suite.outcomes(operation.NameAddSkill, metrics.OutcomeUnauthorized))

	skills, err := suite.skills.ListSkills(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(skills)
}

// TestSkillGraph tests prerequisites and contributions through the service
func (suite *ServiceTestSuite) TestSkillGraph() {
	goSkill := suite.seed.Skill("Go")
	suite.seed.Skill("Concurrency")
	suite.seed.Skill("Kubernetes Operators")

	prerequisite, err := suite.skills.AddPrerequisite(suite.ctx, suite.admin.ID, goSkill.ID, &service.SkillLinkRequest{Name: "Concurrency"})
	suite.Require().NoError(err)
	suite.Equal("Concurrency", prerequisite.Name)

	_, err = suite.skills.AddContribution(suite.ctx, suite.admin.ID, goSkill.ID, &service.SkillLinkRequest{Name: "Kubernetes Operators"})
	suite.Require().NoError(err)

	detail, err := suite.skills.GetSkill(suite.ctx, goSkill.ID)
	suite.Require().NoError(err)
	suite.Require().Len(detail.Prerequisites, 1)
	suite.Equal("Concurrency", detail.Prerequisites[0].Name)
	suite.Require().Len(detail.Contributions, 1)
	suite.Equal("Kubernetes Operators", detail.Contributions[0].Name)

	contributions, err := suite.skills.GetContributions(suite.ctx, prerequisite.ID)
	suite.Require().NoError(err)
	suite.Require().Len(contributions, 1)
	suite.Equal(goSkill.ID, contributions[0].ID)

	suite.Require().NoError(suite.skills.RemovePrerequisite(suite.ctx, suite.admin.ID, goSkill.ID, prerequisite.ID))
	prerequisites, err := suite.skills.GetPrerequisites(suite.ctx, goSkill.ID)
	suite.Require().NoError(err)
	suite.Empty(prerequisites)
}

// TestSkillReadsOfMissingSkill tests the not found mapping on reads
func (suite *ServiceTestSuite) TestSkillReadsOfMissingSkill() {
	_, err := suite.skills.GetSkill(suite.ctx, 999)
	suite.ErrorIs(err, apperrors.ErrSkillNotFound)

	_, err = suite.skills.GetPrerequisites(suite.ctx, 999)
	suite.ErrorIs(err, apperrors.ErrSkillNotFound)

	_, err = suite.skills.GetContributions(suite.ctx, 999)
	suite.ErrorIs(err, apperrors.ErrSkillNotFound)
}

// TestSelfPrerequisite tests that the self loop surfaces as its own error kind
func (suite *ServiceTestSuite) TestSelfPrerequisite() {
	goSkill := suite.seed.Skill("Go")

	_, err := suite.skills.AddPrerequisite(suite.ctx, suite.admin.ID, goSkill.ID, &service.SkillLinkRequest{Name: "Go"})

	suite.True(apperrors.IsSkillSelfPrerequisite(err))
	suite.Equal(1.0, suite.outcomes(operation.NameAddSkillPrerequisite, metrics.OutcomeInvalid))
}

// TestTeamLifecycle tests teams, members and admin rights
func (suite *ServiceTestSuite) TestTeamLifecycle() {
	team, err := suite.teams.CreateTeam(suite.ctx, suite.admin.ID, &service.CreateTeamRequest{Name: "platform"})
	suite.Require().NoError(err)

	member, err := suite.teams.AddMember(suite.ctx, suite.admin.ID, team.ID, &service.AddTeamMemberRequest{Username: suite.reader.Username})
	suite.Require().NoError(err)
	suite.Equal(suite.reader.ID, member.UserID)
	suite.Equal(suite.reader.Username, member.Username)
	suite.False(member.IsAdmin)

	isAdmin := true
	suite.Require().NoError(suite.teams.SetAdminRights(suite.ctx, suite.admin.ID, team.ID, suite.reader.ID, &service.SetAdminRightsRequest{IsAdmin: &isAdmin}))

	detail, err := suite.teams.GetTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal("platform", detail.Name)
	suite.Require().Len(detail.Members, 1)
	suite.True(detail.Members[0].IsAdmin)
	suite.Empty(detail.Skills)

	suite.Require().NoError(suite.teams.RemoveMember(suite.ctx, suite.admin.ID, team.ID, suite.reader.ID))
	err = suite.teams.RemoveMember(suite.ctx, suite.admin.ID, team.ID, suite.reader.ID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberNotFound)

	suite.Require().NoError(suite.teams.DeleteTeam(suite.ctx, suite.admin.ID, team.ID))
	_, err = suite.teams.GetTeam(suite.ctx, team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestSetAdminRightsRequiresValue tests that is_admin must be present
func (suite *ServiceTestSuite) TestSetAdminRightsRequiresValue() {
	team := suite.seed.Team("platform")

	err := suite.teams.SetAdminRights(suite.ctx, suite.admin.ID, team.ID, suite.reader.ID, &service.SetAdminRightsRequest{})

	suite.True(apperrors.IsValidation(err))
}

// TestVoting tests upvote and downvote responses
func (suite *ServiceTestSuite) TestVoting() {
	team := suite.seed.Team("platform")
	goSkill := suite.seed.Skill("Go")

	added, err := suite.teams.AddTeamSkill(suite.ctx, suite.admin.ID, team.ID, &service.AddTeamSkillRequest{SkillName: "Go"})
	suite.Require().NoError(err)
	suite.Equal("Go", added.SkillName)
	suite.Empty(added.UpvotingUserIDs)
	suite.NotNil(added.UpvotingUserIDs)

	voted, err := suite.teams.UpvoteTeamSkill(suite.ctx, suite.reader.ID, team.ID, goSkill.ID)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.reader.ID}, voted.UpvotingUserIDs)
	suite.Equal(1, voted.Upvotes)

	_, err = suite.teams.UpvoteTeamSkill(suite.ctx, suite.reader.ID, team.ID, goSkill.ID)
	suite.ErrorIs(err, apperrors.ErrTeamSkillUpvoteExists)
	suite.Equal(1.0, suite.outcomes(operation.NameUpvoteTeamSkill, metrics.OutcomeAlreadyExists))

	unvoted, err := suite.teams.DownvoteTeamSkill(suite.ctx, suite.reader.ID, team.ID, goSkill.ID)
	suite.Require().NoError(err)
	suite.Zero(unvoted.Upvotes)

	skills, err := suite.teams.GetTeamSkills(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(skills, 1)
	suite.Empty(skills[0].UpvotingUserIDs)

	suite.Require().NoError(suite.teams.RemoveTeamSkill(suite.ctx, suite.admin.ID, team.ID, goSkill.ID))
	skills, err = suite.teams.GetTeamSkills(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Empty(skills)
}

// TestPermissions tests reading and changing global permissions
func (suite *ServiceTestSuite) TestPermissions() {
	current, err := suite.users.GetCurrentUser(suite.ctx, suite.reader.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"READER"}, current.Permissions)

	changed, err := suite.users.AddPermissions(suite.ctx, suite.admin.ID, suite.reader.Username,
		&service.PermissionsRequest{Permissions: []string{"skills_list_admin"}})
	suite.Require().NoError(err)
	suite.Equal([]string{"READER", "SKILLS_LIST_ADMIN"}, changed.Permissions)

	changed, err = suite.users.RemovePermissions(suite.ctx, suite.admin.ID, suite.reader.Username,
		&service.PermissionsRequest{Permissions: []string{"READER"}})
	suite.Require().NoError(err)
	suite.Equal([]string{"SKILLS_LIST_ADMIN"}, changed.Permissions)

	read, err := suite.users.GetPermissions(suite.ctx, suite.reader.Username)
	suite.Require().NoError(err)
	suite.Equal(changed.Permissions, read.Permissions)
}

// TestPermissionsErrors tests the failure paths of the permission endpoints
func (suite *ServiceTestSuite) TestPermissionsErrors() {
	_, err := suite.users.AddPermissions(suite.ctx, suite.admin.ID, suite.reader.Username,
		&service.PermissionsRequest{Permissions: []string{"ROOT"}})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.users.AddPermissions(suite.ctx, suite.admin.ID, suite.reader.Username,
		&service.PermissionsRequest{})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.users.AddPermissions(suite.ctx, suite.reader.ID, suite.admin.Username,
		&service.PermissionsRequest{Permissions: []string{"READER"}})
	suite.True(apperrors.IsAuthorization(err))

	_, err = suite.users.AddPermissions(suite.ctx, suite.admin.ID, "nobody",
		&service.PermissionsRequest{Permissions: []string{"READER"}})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.users.GetPermissions(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.users.GetCurrentUser(suite.ctx, 999)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
