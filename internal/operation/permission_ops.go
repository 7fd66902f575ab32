package operation

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
)

// AddGlobalPermissions grants permissions to the user named username
func (f *Factory) AddGlobalPermissions(userID int64, username string, permissions []models.GlobalPermission) *Operation[models.PermissionSet] {
	return New(NameAddGlobalPermissions, userID, f.global(NameAddGlobalPermissions, Admins),
		func(ctx context.Context) (models.PermissionSet, error) {
			if err := f.users.AddGlobalPermissions(ctx, username, permissions); err != nil {
				return nil, notFound(err, apperrors.ErrUserNotFound)
			}
			return f.currentPermissions(ctx, username)
		})
}

// RemoveGlobalPermissions revokes permissions from the user named username
func (f *Factory) RemoveGlobalPermissions(userID int64, username string, permissions []models.GlobalPermission) *Operation[models.PermissionSet] {
	return New(NameRemoveGlobalPermissions, userID, f.global(NameRemoveGlobalPermissions, Admins),
		func(ctx context.Context) (models.PermissionSet, error) {
			if err := f.users.RemoveGlobalPermissions(ctx, username, permissions); err != nil {
				return nil, notFound(err, apperrors.ErrUserNotFound)
			}
			return f.currentPermissions(ctx, username)
		})
}

func (f *Factory) currentPermissions(ctx context.Context, username string) (models.PermissionSet, error) {
	held, err := f.users.GetUserGlobalPermissions(ctx, username)
	return held, notFound(err, apperrors.ErrUserNotFound)
}
