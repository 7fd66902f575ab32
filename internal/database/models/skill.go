package models

// Skill is a named competence that teams can claim and users can vouch for
type Skill struct {
	BaseModel
	Name string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Type SkillType `json:"type" gorm:"type:varchar(20);not null;default:'SKILL'" validate:"required,oneof=SKILL TECHNOLOGY"`
}

// TableName returns the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// SkillCreator records which user added a skill
type SkillCreator struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  int64 `json:"user_id" gorm:"not null;index" validate:"required,gt=0"`
	SkillID int64 `json:"skill_id" gorm:"not null;uniqueIndex" validate:"required,gt=0"`

	// Relationships
	User  *User  `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	Skill *Skill `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for SkillCreator
func (SkillCreator) TableName() string {
	return "skill_creators"
}

// SkillPrerequisite is a directed edge: SkillID depends on SkillPrerequisiteID
type SkillPrerequisite struct {
	ID                  int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	SkillID             int64 `json:"skill_id" gorm:"not null;uniqueIndex:idx_skill_prerequisites_pair" validate:"required,gt=0"`
	SkillPrerequisiteID int64 `json:"skill_prerequisite_id" gorm:"not null;uniqueIndex:idx_skill_prerequisites_pair;index;check:chk_skill_prerequisites_not_self,skill_id <> skill_prerequisite_id" validate:"required,gt=0,nefield=SkillID"`

	// Relationships
	Skill        *Skill `json:"-" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" validate:"-"`
	Prerequisite *Skill `json:"-" gorm:"foreignKey:SkillPrerequisiteID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for SkillPrerequisite
func (SkillPrerequisite) TableName() string {
	return "skill_prerequisites"
}
