package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/metrics"
	"skills-tracker-backend/internal/operation"
	"skills-tracker-backend/internal/repository"
	"skills-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles business logic for users and their global permissions
type UserService struct {
	users      repository.UserRepositoryInterface
	operations *operation.Factory
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface, operations *operation.Factory, m *metrics.Metrics, validator *validator.Validate) *UserService {
	return &UserService{
		users:      users,
		operations: operations,
		metrics:    m,
		validator:  validator,
	}
}

// PermissionsRequest lists global permissions to grant or revoke
type PermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1,dive,required" example:"SKILLS_LIST_ADMIN"`
}

// PermissionsResponse is the permission set of one user after a read or change
type PermissionsResponse struct {
	Username    string   `json:"username" example:"johndoe"`
	Permissions []string `json:"permissions" example:"READER"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          int64    `json:"id" example:"1"`
	Username    string   `json:"username" example:"johndoe"`
	Permissions []string `json:"permissions" example:"READER"`
	CreatedAt   string   `json:"created_at"`
}

// GetCurrentUser returns the user with its global permissions
func (s *UserService) GetCurrentUser(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	held, err := s.users.GetUserGlobalPermissionsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get global permissions: %w", err)
	}
	return &UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Permissions: held.Strings(),
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetPermissions returns the global permissions of the user named username
func (s *UserService) GetPermissions(ctx context.Context, username string) (*PermissionsResponse, error) {
	held, err := s.users.GetUserGlobalPermissions(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get global permissions: %w", err)
	}
	return &PermissionsResponse{Username: username, Permissions: held.Strings()}, nil
}

// AddPermissions runs the AddGlobalPermissions operation
func (s *UserService) AddPermissions(ctx context.Context, actingUserID int64, username string, req *PermissionsRequest) (*PermissionsResponse, error) {
	permissions, err := s.parse(req)
	if err != nil {
		return nil, err
	}
	held, err := run(ctx, s.metrics, s.operations.AddGlobalPermissions(actingUserID, username, permissions))
	if err != nil {
		return nil, err
	}
	return &PermissionsResponse{Username: username, Permissions: held.Strings()}, nil
}

// RemovePermissions runs the RemoveGlobalPermissions operation
func (s *UserService) RemovePermissions(ctx context.Context, actingUserID int64, username string, req *PermissionsRequest) (*PermissionsResponse, error) {
	permissions, err := s.parse(req)
	if err != nil {
		return nil, err
	}
	held, err := run(ctx, s.metrics, s.operations.RemoveGlobalPermissions(actingUserID, username, permissions))
	if err != nil {
		return nil, err
	}
	return &PermissionsResponse{Username: username, Permissions: held.Strings()}, nil
}

func (s *UserService) parse(req *PermissionsRequest) ([]models.GlobalPermission, error) {
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}
	permissions := make([]models.GlobalPermission, 0, len(req.Permissions))
	for _, name := range req.Permissions {
		p, err := models.ParseGlobalPermission(name)
		if err != nil {
			return nil, apperrors.NewValidationError("permissions", err.Error())
		}
		permissions = append(permissions, p)
	}
	return permissions, nil
}
