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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUserSvc *mocks.MockUserServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserSvc = mocks.NewMockUserServiceInterface(suite.ctrl)
	handler := handlers.NewUserHandler(suite.mockUserSvc)

	suite.http = testutils.SetupHTTPTest().WithUser(1, "root")
	router := suite.http.Router
	router.GET("/users/me", handler.GetCurrentUser)
	router.GET("/users/:username/permissions", handler.GetPermissions)
	router.POST("/users/:username/permissions", handler.AddPermissions)
	router.DELETE("/users/:username/permissions", handler.RemovePermissions)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	suite.mockUserSvc.EXPECT().GetCurrentUser(gomock.Any(), int64(1)).
		Return(&service.UserResponse{ID: 1, Username: "root", Permissions: []string{"ADMIN"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/users/me", nil)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal([]string{"ADMIN"}, got.Permissions)
}

func (suite *UserHandlerTestSuite) TestGetPermissionsUnknownUser() {
	suite.mockUserSvc.EXPECT().GetPermissions(gomock.Any(), "ghost").Return(nil, apperrors.ErrUserNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/users/ghost/permissions", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestAddPermissions() {
	req := &service.PermissionsRequest{Permissions: []string{"SKILLS_LIST_ADMIN"}}
	suite.mockUserSvc.EXPECT().AddPermissions(gomock.Any(), int64(1), "alice", req).
		Return(&service.PermissionsResponse{Username: "alice", Permissions: []string{"READER", "SKILLS_LIST_ADMIN"}}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/users/alice/permissions", req)

	var got service.PermissionsResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal([]string{"READER", "SKILLS_LIST_ADMIN"}, got.Permissions)
}

func (suite *UserHandlerTestSuite) TestAddPermissionsAlreadyHeld() {
	suite.mockUserSvc.EXPECT().AddPermissions(gomock.Any(), int64(1), "alice", gomock.Any()).
		Return(nil, apperrors.ErrGlobalPermissionExists)

	w := suite.http.MakeRequest(http.MethodPost, "/users/alice/permissions", map[string][]string{"permissions": {"READER"}})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "global permission already exists")
}

func (suite *UserHandlerTestSuite) TestRemovePermissionsForbidden() {
	suite.mockUserSvc.EXPECT().RemovePermissions(gomock.Any(), int64(1), "alice", gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("not allowed to remove_global_permissions"))

	w := suite.http.MakeRequest(http.MethodDelete, "/users/alice/permissions", map[string][]string{"permissions": {"READER"}})

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
