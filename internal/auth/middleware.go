package auth

import (
	"net/http"

	"skills-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Keys under which RequireAuth stores the authenticated user on the gin context
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(token)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Debug("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Username))
		c.Next()
	}
}

// GetUserID returns the id stored by RequireAuth
func GetUserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok && id > 0
}

// GetUsername returns the username stored by RequireAuth
func GetUsername(c *gin.Context) (string, bool) {
	name := c.GetString(ContextKeyUsername)
	return name, name != ""
}
