package handlers_test

import (
	"net/http"
	"testing"

	"skills-tracker-backend/internal/api/handlers"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/mocks"
	"skills-tracker-backend/internal/service"
	"skills-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockTeamSvc *mocks.MockTeamServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamSvc = mocks.NewMockTeamServiceInterface(suite.ctrl)
	handler := handlers.NewTeamHandler(suite.mockTeamSvc)

	suite.http = testutils.SetupHTTPTest().WithUser(7, "lead")
	router := suite.http.Router
	router.GET("/teams", handler.ListTeams)
	router.GET("/teams/:id", handler.GetTeam)
	router.POST("/teams", handler.CreateTeam)
	router.DELETE("/teams/:id", handler.DeleteTeam)
	router.GET("/teams/:id/members", handler.GetMembers)
	router.POST("/teams/:id/members", handler.AddMember)
	router.DELETE("/teams/:id/members/:userId", handler.RemoveMember)
	router.PATCH("/teams/:id/members/:userId/admin", handler.SetAdminRights)
	router.GET("/teams/:id/skills", handler.GetTeamSkills)
	router.POST("/teams/:id/skills", handler.AddTeamSkill)
	router.DELETE("/teams/:id/skills/:skillId", handler.RemoveTeamSkill)
	router.POST("/teams/:id/skills/:skillId/upvote", handler.UpvoteTeamSkill)
	router.DELETE("/teams/:id/skills/:skillId/upvote", handler.DownvoteTeamSkill)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestListAndGet() {
	suite.mockTeamSvc.EXPECT().ListTeams(gomock.Any()).Return([]service.TeamResponse{{ID: 1, Name: "platform"}}, nil)
	suite.mockTeamSvc.EXPECT().GetTeam(gomock.Any(), int64(1)).Return(&service.TeamDetailResponse{
		TeamResponse: service.TeamResponse{ID: 1, Name: "platform"},
		Members:      []service.TeamMemberResponse{{UserID: 7, Username: "lead", IsAdmin: true}},
		Skills:       []service.TeamSkillResponse{},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/teams", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodGet, "/teams/1", nil)
	var got service.TeamDetailResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("platform", got.Name)
	suite.Require().Len(got.Members, 1)
	suite.True(got.Members[0].IsAdmin)
}

func (suite *TeamHandlerTestSuite) TestCreateAndDelete() {
	suite.mockTeamSvc.EXPECT().CreateTeam(gomock.Any(), int64(7), &service.CreateTeamRequest{Name: "platform"}).
		Return(&service.TeamResponse{ID: 2, Name: "platform"}, nil)
	suite.mockTeamSvc.EXPECT().DeleteTeam(gomock.Any(), int64(7), int64(2)).Return(apperrors.ErrTeamNotFound)

	w := suite.http.MakeRequest(http.MethodPost, "/teams", map[string]string{"name": "platform"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequest(http.MethodDelete, "/teams/2", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestMembers() {
	suite.mockTeamSvc.EXPECT().GetMembers(gomock.Any(), int64(1)).Return([]service.TeamMemberResponse{}, nil)
	suite.mockTeamSvc.EXPECT().AddMember(gomock.Any(), int64(7), int64(1), &service.AddTeamMemberRequest{Username: "bob"}).
		Return(&service.TeamMemberResponse{UserID: 9, Username: "bob"}, nil)
	suite.mockTeamSvc.EXPECT().RemoveMember(gomock.Any(), int64(7), int64(1), int64(9)).Return(nil)

	w := suite.http.MakeRequest(http.MethodGet, "/teams/1/members", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodPost, "/teams/1/members", map[string]string{"username": "bob"})
	var member service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &member)
	suite.Equal(int64(9), member.UserID)

	w = suite.http.MakeRequest(http.MethodDelete, "/teams/1/members/9", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TeamHandlerTestSuite) TestSetAdminRights() {
	isAdmin := true
	suite.mockTeamSvc.EXPECT().
		SetAdminRights(gomock.Any(), int64(7), int64(1), int64(9), &service.SetAdminRightsRequest{IsAdmin: &isAdmin}).
		Return(nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/teams/1/members/9/admin", map[string]bool{"is_admin": true})

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TeamHandlerTestSuite) TestSetAdminRightsForbidden() {
	suite.mockTeamSvc.EXPECT().SetAdminRights(gomock.Any(), int64(7), int64(1), int64(9), gomock.Any()).
		Return(apperrors.NewAuthorizationError("not allowed to set_admin_rights"))

	w := suite.http.MakeRequest(http.MethodPatch, "/teams/1/members/9/admin", map[string]bool{"is_admin": false})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "not allowed")
}

func (suite *TeamHandlerTestSuite) TestSetAdminRightsInvalidMember() {
	w := suite.http.MakeRequest(http.MethodPatch, "/teams/1/members/nope/admin", map[string]bool{"is_admin": true})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid userId")
}

func (suite *TeamHandlerTestSuite) TestTeamSkills() {
	suite.mockTeamSvc.EXPECT().GetTeamSkills(gomock.Any(), int64(1)).Return([]service.TeamSkillResponse{}, nil)
	suite.mockTeamSvc.EXPECT().AddTeamSkill(gomock.Any(), int64(7), int64(1), &service.AddTeamSkillRequest{SkillName: "Go"}).
		Return(&service.TeamSkillResponse{SkillID: 3, SkillName: "Go", UpvotingUserIDs: []int64{}}, nil)
	suite.mockTeamSvc.EXPECT().RemoveTeamSkill(gomock.Any(), int64(7), int64(1), int64(3)).Return(nil)

	w := suite.http.MakeRequest(http.MethodGet, "/teams/1/skills", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodPost, "/teams/1/skills", map[string]string{"skill_name": "Go"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequest(http.MethodDelete, "/teams/1/skills/3", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TeamHandlerTestSuite) TestVoting() {
	suite.mockTeamSvc.EXPECT().UpvoteTeamSkill(gomock.Any(), int64(7), int64(1), int64(3)).
		Return(&service.TeamSkillResponse{SkillID: 3, UpvotingUserIDs: []int64{7}, Upvotes: 1}, nil)
	suite.mockTeamSvc.EXPECT().UpvoteTeamSkill(gomock.Any(), int64(7), int64(1), int64(3)).
		Return(nil, apperrors.ErrTeamSkillUpvoteExists)
	suite.mockTeamSvc.EXPECT().DownvoteTeamSkill(gomock.Any(), int64(7), int64(1), int64(3)).
		Return(nil, apperrors.ErrTeamSkillUpvoteNotFound)

	w := suite.http.MakeRequest(http.MethodPost, "/teams/1/skills/3/upvote", nil)
	var got service.TeamSkillResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal([]int64{7}, got.UpvotingUserIDs)

	w = suite.http.MakeRequest(http.MethodPost, "/teams/1/skills/3/upvote", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.http.MakeRequest(http.MethodDelete, "/teams/1/skills/3/upvote", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "team skill upvote not found")
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
