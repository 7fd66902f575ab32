package models

// Team represents a team that owns skills and has members
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamCreator records which user added a team
type TeamCreator struct {
	ID     int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64 `json:"user_id" gorm:"not null;index" validate:"required,gt=0"`
	TeamID int64 `json:"team_id" gorm:"not null;uniqueIndex" validate:"required,gt=0"`

	// Relationships
	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	Team *Team `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for TeamCreator
func (TeamCreator) TableName() string {
	return "team_creators"
}

// TeamMember is a user's membership in a team
type TeamMember struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TeamID  int64 `json:"team_id" gorm:"not null;uniqueIndex:idx_team_members_team_user" validate:"required,gt=0"`
	UserID  int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_team_members_team_user;index" validate:"required,gt=0"`
	IsAdmin bool  `json:"is_admin" gorm:"not null;default:false"`

	// Relationships
	Team *Team `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	User *User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
