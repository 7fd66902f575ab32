package repository

import (
	"context"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their global permissions
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a user together with its initial global permissions
func (r *UserRepository) Create(ctx context.Context, user *models.User, permissions ...models.GlobalPermission) error {
	if err := validate(user); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return translateError(err, apperrors.ErrUserExists)
		}
		return insertGlobalPermissions(tx, user.ID, permissions)
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves every user ordered by username
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("username").Find(&users).Error
	return users, err
}

// GetUserGlobalPermissions returns the permissions held by the named user
func (r *UserRepository) GetUserGlobalPermissions(ctx context.Context, username string) (models.PermissionSet, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return loadGlobalPermissions(r.db.WithContext(ctx), user.ID)
}

// GetUserGlobalPermissionsByID returns the permissions held by a user.
// A missing user yields gorm.ErrRecordNotFound rather than an empty set.
func (r *UserRepository) GetUserGlobalPermissionsByID(ctx context.Context, userID int64) (models.PermissionSet, error) {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return loadGlobalPermissions(db, userID)
}

// AddGlobalPermissions grants permissions in one transaction.
// If any of them is already held nothing is written.
func (r *UserRepository) AddGlobalPermissions(ctx context.Context, username string, permissions []models.GlobalPermission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			return err
		}

		held, err := loadGlobalPermissions(tx, user.ID)
		if err != nil {
			return err
		}
		for _, p := range permissions {
			if held.Has(p) {
				return apperrors.ErrGlobalPermissionExists
			}
		}

		return insertGlobalPermissions(tx, user.ID, permissions)
	})
}

// RemoveGlobalPermissions revokes permissions in one transaction; permissions not held are ignored
func (r *UserRepository) RemoveGlobalPermissions(ctx context.Context, username string, permissions []models.GlobalPermission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			return err
		}
		if len(permissions) == 0 {
			return nil
		}
		return tx.Where("user_id = ? AND permission IN ?", user.ID, permissions).
			Delete(&models.UserGlobalPermission{}).Error
	})
}

func loadGlobalPermissions(db *gorm.DB, userID int64) (models.PermissionSet, error) {
	var rows []models.UserGlobalPermission
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	set := models.NewPermissionSet()
	for _, row := range rows {
		set[row.Permission] = struct{}{}
	}
	return set, nil
}

func insertGlobalPermissions(tx *gorm.DB, userID int64, permissions []models.GlobalPermission) error {
	for _, p := range models.NewPermissionSet(permissions...).Slice() {
		row := models.UserGlobalPermission{UserID: userID, Permission: p}
		if err := validate(&row); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return translateError(err, apperrors.ErrGlobalPermissionExists)
		}
	}
	return nil
}
