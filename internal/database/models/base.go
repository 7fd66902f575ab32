package models

import (
	"time"
)

// BaseModel provides common fields for all models with integer primary keys
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model in dependency order for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserGlobalPermission{},
		&Skill{},
		&SkillCreator{},
		&SkillPrerequisite{},
		&Team{},
		&TeamCreator{},
		&TeamMember{},
		&TeamSkill{},
		&TeamSkillUpvote{},
	}
}
