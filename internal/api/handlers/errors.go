package handlers

import (
	"net/http"
	"strconv"

	"skills-tracker-backend/internal/auth"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps an error kind onto its HTTP status
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err), apperrors.IsSkillSelfPrerequisite(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// pathID parses a positive integer path parameter, writing a 400 on failure
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// actingUser returns the authenticated user id, writing a 401 when absent
func actingUser(c *gin.Context) (int64, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return 0, false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
