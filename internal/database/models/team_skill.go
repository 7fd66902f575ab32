package models

// TeamSkill assigns a skill to a team
type TeamSkill struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TeamID  int64 `json:"team_id" gorm:"not null;uniqueIndex:idx_team_skills_team_skill" validate:"required,gt=0"`
	SkillID int64 `json:"skill_id" gorm:"not null;uniqueIndex:idx_team_skills_team_skill;index" validate:"required,gt=0"`

	// Relationships
	Team  *Team  `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	Skill *Skill `json:"skill,omitempty" gorm:"constraint:OnDelete:CASCADE" validate:"-"`

	// UpvotingUserIDs is loaded from team_skill_upvotes on every read, never stored
	UpvotingUserIDs []int64 `json:"upvoting_user_ids" gorm:"-" validate:"-"`
}

// TableName returns the table name for TeamSkill
func (TeamSkill) TableName() string {
	return "team_skills"
}

// TeamSkillUpvote is one user's endorsement of a team skill
type TeamSkillUpvote struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TeamSkillID int64 `json:"team_skill_id" gorm:"not null;uniqueIndex:idx_team_skill_upvotes_team_skill_user" validate:"required,gt=0"`
	UserID      int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_team_skill_upvotes_team_skill_user;index" validate:"required,gt=0"`

	// Relationships
	TeamSkill *TeamSkill `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	User      *User      `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for TeamSkillUpvote
func (TeamSkillUpvote) TableName() string {
	return "team_skill_upvotes"
}
