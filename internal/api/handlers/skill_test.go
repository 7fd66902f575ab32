package handlers_test

import (
	"errors"
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

// SkillHandlerTestSuite defines the test suite for SkillHandler
type SkillHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSkillSvc *mocks.MockSkillServiceInterface
	http         *testutils.HTTPTestSuite
}

func (suite *SkillHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSkillSvc = mocks.NewMockSkillServiceInterface(suite.ctrl)
	handler := handlers.NewSkillHandler(suite.mockSkillSvc)

	suite.http = testutils.SetupHTTPTest().WithUser(1, "admin")
	router := suite.http.Router
	router.GET("/skills", handler.ListSkills)
	router.GET("/skills/:id", handler.GetSkill)
	router.POST("/skills", handler.CreateSkill)
	router.DELETE("/skills/:id", handler.DeleteSkill)
	router.GET("/skills/:id/prerequisites", handler.GetPrerequisites)
	router.POST("/skills/:id/prerequisites", handler.AddPrerequisite)
	router.DELETE("/skills/:id/prerequisites/:prerequisiteId", handler.RemovePrerequisite)
	router.GET("/skills/:id/contributions", handler.GetContributions)
	router.POST("/skills/:id/contributions", handler.AddContribution)
	router.DELETE("/skills/:id/contributions/:contributionId", handler.RemoveContribution)
}

func (suite *SkillHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SkillHandlerTestSuite) TestListSkills() {
	suite.mockSkillSvc.EXPECT().ListSkills(gomock.Any()).
		Return([]service.SkillResponse{{ID: 1, Name: "Go"}, {ID: 2, Name: "SQL"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/skills", nil)

	var got []service.SkillResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 2)
	suite.Equal("Go", got[0].Name)
}

func (suite *SkillHandlerTestSuite) TestGetSkillInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/skills/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")

	w = suite.http.MakeRequest(http.MethodGet, "/skills/0", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")
}

func (suite *SkillHandlerTestSuite) TestGetSkillNotFound() {
	suite.mockSkillSvc.EXPECT().GetSkill(gomock.Any(), int64(9)).Return(nil, apperrors.ErrSkillNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/skills/9", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "skill not found")
}

func (suite *SkillHandlerTestSuite) TestCreateSkill() {
	suite.mockSkillSvc.EXPECT().
		CreateSkill(gomock.Any(), int64(1), &service.CreateSkillRequest{Name: "Go", Type: "TECHNOLOGY"}).
		Return(&service.SkillResponse{ID: 5, Name: "Go", Type: "TECHNOLOGY"}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/skills", map[string]string{"name": "Go", "type": "TECHNOLOGY"})

	var got service.SkillResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(int64(5), got.ID)
}

func (suite *SkillHandlerTestSuite) TestCreateSkillErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "forbidden", err: apperrors.NewAuthorizationError("not allowed to add_skill"), status: http.StatusForbidden},
		{name: "duplicate", err: apperrors.ErrSkillExists, status: http.StatusConflict},
		{name: "invalid", err: apperrors.NewValidationError("name", "is required"), status: http.StatusBadRequest},
		{name: "store failure", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockSkillSvc.EXPECT().CreateSkill(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodPost, "/skills", map[string]string{"name": "Go"})

			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *SkillHandlerTestSuite) TestInternalErrorIsNotLeaked() {
	suite.mockSkillSvc.EXPECT().ListSkills(gomock.Any()).Return(nil, errors.New("pq: password authentication failed"))

	w := suite.http.MakeRequest(http.MethodGet, "/skills", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
	suite.NotContains(w.Body.String(), "pq:")
}

func (suite *SkillHandlerTestSuite) TestCreateSkillMalformedBody() {
	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/skills", "not an object", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
}

func (suite *SkillHandlerTestSuite) TestDeleteSkill() {
	suite.mockSkillSvc.EXPECT().DeleteSkill(gomock.Any(), int64(1), int64(4)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/skills/4", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SkillHandlerTestSuite) TestPrerequisites() {
	suite.mockSkillSvc.EXPECT().GetPrerequisites(gomock.Any(), int64(2)).
		Return([]service.SkillResponse{{ID: 3, Name: "Concurrency"}}, nil)
	suite.mockSkillSvc.EXPECT().
		AddPrerequisite(gomock.Any(), int64(1), int64(2), &service.SkillLinkRequest{Name: "Concurrency"}).
		Return(&service.SkillResponse{ID: 3, Name: "Concurrency"}, nil)
	suite.mockSkillSvc.EXPECT().RemovePrerequisite(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)

	w := suite.http.MakeRequest(http.MethodGet, "/skills/2/prerequisites", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodPost, "/skills/2/prerequisites", map[string]string{"name": "Concurrency"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequest(http.MethodDelete, "/skills/2/prerequisites/3", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SkillHandlerTestSuite) TestSelfPrerequisiteIsBadRequest() {
	suite.mockSkillSvc.EXPECT().AddPrerequisite(gomock.Any(), int64(1), int64(2), gomock.Any()).
		Return(nil, apperrors.NewSkillSelfPrerequisiteError(2))

	w := suite.http.MakeRequest(http.MethodPost, "/skills/2/prerequisites", map[string]string{"name": "Go"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "prerequisite of itself")
}

func (suite *SkillHandlerTestSuite) TestContributions() {
	suite.mockSkillSvc.EXPECT().GetContributions(gomock.Any(), int64(2)).Return([]service.SkillResponse{}, nil)
	suite.mockSkillSvc.EXPECT().AddContribution(gomock.Any(), int64(1), int64(2), gomock.Any()).
		Return(nil, apperrors.ErrSkillContributionExists)
	suite.mockSkillSvc.EXPECT().RemoveContribution(gomock.Any(), int64(1), int64(2), int64(8)).Return(nil)

	w := suite.http.MakeRequest(http.MethodGet, "/skills/2/contributions", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())

	w = suite.http.MakeRequest(http.MethodPost, "/skills/2/contributions", map[string]string{"name": "Operators"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.http.MakeRequest(http.MethodDelete, "/skills/2/contributions/8", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SkillHandlerTestSuite) TestRemovePrerequisiteInvalidID() {
	w := suite.http.MakeRequest(http.MethodDelete, "/skills/2/prerequisites/x", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid prerequisiteId")
}

func TestSkillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SkillHandlerTestSuite))
}

func TestMutationsRequireUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewSkillHandler(mocks.NewMockSkillServiceInterface(ctrl))
	h := testutils.SetupHTTPTest()
	h.Router.POST("/skills", handler.CreateSkill)

	w := h.MakeRequest(http.MethodPost, "/skills", map[string]string{"name": "Go"})

	testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "user not found in context")
}
