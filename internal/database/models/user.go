package models

// User is an account that can authenticate and execute operations
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:40" validate:"required,min=3,max=40"`
	PasswordHash string `json:"-" gorm:"not null;size:100" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserGlobalPermission assigns one global permission to one user
type UserGlobalPermission struct {
	ID         int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64            `json:"user_id" gorm:"not null;uniqueIndex:idx_global_permissions_user_permission" validate:"required,gt=0"`
	Permission GlobalPermission `json:"permission" gorm:"type:varchar(32);not null;uniqueIndex:idx_global_permissions_user_permission" validate:"required,oneof=ADMIN SKILLS_LIST_ADMIN TEAMS_LIST_ADMIN READER GUEST"`

	// Relationships
	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for UserGlobalPermission
func (UserGlobalPermission) TableName() string {
	return "global_permissions"
}
