package handlers

import (
	"context"
	"net/http"

	"skills-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users and global permissions
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetCurrentUser handles GET /users/me
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	user, err := h.userService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetPermissions handles GET /users/:username/permissions
// @Summary Get the global permissions of a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.PermissionsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/permissions [get]
func (h *UserHandler) GetPermissions(c *gin.Context) {
	permissions, err := h.userService.GetPermissions(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}

// AddPermissions handles POST /users/:username/permissions
// @Summary Grant global permissions
// @Description Requires ADMIN. Fails without changes if any permission is already held.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param permissions body service.PermissionsRequest true "Permissions"
// @Success 200 {object} service.PermissionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/permissions [post]
func (h *UserHandler) AddPermissions(c *gin.Context) {
	h.changePermissions(c, h.userService.AddPermissions)
}

// RemovePermissions handles DELETE /users/:username/permissions
// @Summary Revoke global permissions
// @Description Requires ADMIN. Permissions the user does not hold are ignored.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param permissions body service.PermissionsRequest true "Permissions"
// @Success 200 {object} service.PermissionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/permissions [delete]
func (h *UserHandler) RemovePermissions(c *gin.Context) {
	h.changePermissions(c, h.userService.RemovePermissions)
}

type permissionsFunc func(ctx context.Context, actingUserID int64, username string, req *service.PermissionsRequest) (*service.PermissionsResponse, error)

func (h *UserHandler) changePermissions(c *gin.Context, change permissionsFunc) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req service.PermissionsRequest
	if !bindJSON(c, &req) {
		return
	}

	permissions, err := change(c.Request.Context(), userID, c.Param("username"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}
