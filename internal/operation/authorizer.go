package operation

import (
	"context"
	"errors"
	"fmt"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// Authorizer decides whether a user may run an operation
type Authorizer interface {
	Authorize(ctx context.Context, userID int64) error
}

// AuthorizerFunc adapts a function to the Authorizer interface
type AuthorizerFunc func(ctx context.Context, userID int64) error

// Authorize calls f
func (f AuthorizerFunc) Authorize(ctx context.Context, userID int64) error {
	return f(ctx, userID)
}

// PermissionReader loads the global permissions held by a user
type PermissionReader interface {
	GetUserGlobalPermissionsByID(ctx context.Context, userID int64) (models.PermissionSet, error)
}

// MembershipReader loads a single team membership
type MembershipReader interface {
	GetTeamMember(ctx context.Context, teamID, userID int64) (*models.TeamMember, error)
}

// GlobalPermissionAuthorizer succeeds when the user holds at least one permission of the sufficient set
type GlobalPermissionAuthorizer struct {
	users      PermissionReader
	sufficient models.PermissionSet
	operation  string
}

// NewGlobalPermissionAuthorizer creates an authorizer for the given sufficient set
func NewGlobalPermissionAuthorizer(users PermissionReader, operation string, sufficient ...models.GlobalPermission) *GlobalPermissionAuthorizer {
	return &GlobalPermissionAuthorizer{
		users:      users,
		sufficient: models.NewPermissionSet(sufficient...),
		operation:  operation,
	}
}

// Sufficient returns the permissions that grant access
func (a *GlobalPermissionAuthorizer) Sufficient() models.PermissionSet {
	return a.sufficient
}

// Authorize implements Authorizer
func (a *GlobalPermissionAuthorizer) Authorize(ctx context.Context, userID int64) error {
	held, err := a.users.GetUserGlobalPermissionsByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied(a.operation, fmt.Sprintf("user %d does not exist", userID))
		}
		return fmt.Errorf("failed to load global permissions: %w", err)
	}
	if !held.Intersects(a.sufficient) {
		return denied(a.operation, fmt.Sprintf("requires one of %v", a.sufficient.Strings()))
	}
	return nil
}

// TeamAdminAuthorizer succeeds when the user is an admin member of the team
type TeamAdminAuthorizer struct {
	members   MembershipReader
	teamID    int64
	operation string
}

// NewTeamAdminAuthorizer creates an authorizer scoped to teamID
func NewTeamAdminAuthorizer(members MembershipReader, operation string, teamID int64) *TeamAdminAuthorizer {
	return &TeamAdminAuthorizer{members: members, teamID: teamID, operation: operation}
}

// Authorize implements Authorizer
func (a *TeamAdminAuthorizer) Authorize(ctx context.Context, userID int64) error {
	member, err := a.members.GetTeamMember(ctx, a.teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied(a.operation, fmt.Sprintf("user %d is not a member of team %d", userID, a.teamID))
		}
		return fmt.Errorf("failed to load team membership: %w", err)
	}
	if !member.IsAdmin {
		return denied(a.operation, fmt.Sprintf("user %d is not an admin of team %d", userID, a.teamID))
	}
	return nil
}

// AnyOf succeeds as soon as one authorizer succeeds.
// Errors other than authorization failures are returned immediately.
func AnyOf(authorizers ...Authorizer) Authorizer {
	return AuthorizerFunc(func(ctx context.Context, userID int64) error {
		var first error
		for _, a := range authorizers {
			err := a.Authorize(ctx, userID)
			if err == nil {
				return nil
			}
			if !apperrors.IsAuthorization(err) {
				return err
			}
			if first == nil {
				first = err
			}
		}
		if first == nil {
			return apperrors.NewAuthorizationError("no authorizer configured")
		}
		return first
	})
}

func denied(operation, reason string) error {
	return apperrors.NewAuthorizationError(fmt.Sprintf("not allowed to %s: %s", operation, reason))
}
