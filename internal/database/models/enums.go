package models

import (
	"fmt"
	"strings"
)

// GlobalPermission is a user-wide role independent of any team
type GlobalPermission string

const (
	GlobalPermissionAdmin           GlobalPermission = "ADMIN"
	GlobalPermissionSkillsListAdmin GlobalPermission = "SKILLS_LIST_ADMIN"
	GlobalPermissionTeamsListAdmin  GlobalPermission = "TEAMS_LIST_ADMIN"
	GlobalPermissionReader          GlobalPermission = "READER"
	GlobalPermissionGuest           GlobalPermission = "GUEST"
)

// AllGlobalPermissions lists every permission in declaration order
func AllGlobalPermissions() []GlobalPermission {
	return []GlobalPermission{
		GlobalPermissionAdmin,
		GlobalPermissionSkillsListAdmin,
		GlobalPermissionTeamsListAdmin,
		GlobalPermissionReader,
		GlobalPermissionGuest,
	}
}

// IsValid checks if the GlobalPermission is valid
func (p GlobalPermission) IsValid() bool {
	switch p {
	case GlobalPermissionAdmin, GlobalPermissionSkillsListAdmin, GlobalPermissionTeamsListAdmin,
		GlobalPermissionReader, GlobalPermissionGuest:
		return true
	}
	return false
}

// ParseGlobalPermission converts a case-insensitive name into a GlobalPermission
func ParseGlobalPermission(s string) (GlobalPermission, error) {
	p := GlobalPermission(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown global permission %q", s)
	}
	return p, nil
}

// SkillType distinguishes soft skills from concrete technologies
type SkillType string

const (
	SkillTypeSkill      SkillType = "SKILL"
	SkillTypeTechnology SkillType = "TECHNOLOGY"
)

// IsValid checks if the SkillType is valid
func (s SkillType) IsValid() bool {
	switch s {
	case SkillTypeSkill, SkillTypeTechnology:
		return true
	}
	return false
}
