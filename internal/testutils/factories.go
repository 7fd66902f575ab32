package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"skills-tracker-backend/internal/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var sequence int64

func nextSeq() int64 {
	return atomic.AddInt64(&sequence, 1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Username: fmt.Sprintf("user-%d", nextSeq()),
		// placeholder bcrypt hash, not usable for login
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// SkillFactory provides methods to create test Skill data
type SkillFactory struct{}

// NewSkillFactory creates a new SkillFactory
func NewSkillFactory() *SkillFactory {
	return &SkillFactory{}
}

// Create creates a test Skill with default values
func (f *SkillFactory) Create() *models.Skill {
	return &models.Skill{
		Name: fmt.Sprintf("skill-%d", nextSeq()),
		Type: models.SkillTypeSkill,
	}
}

// WithName sets a custom name for the skill
func (f *SkillFactory) WithName(name string) *models.Skill {
	skill := f.Create()
	skill.Name = name
	return skill
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{Name: fmt.Sprintf("team-%d", nextSeq())}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// FactorySet provides access to all factories
type FactorySet struct {
	User  *UserFactory
	Skill *SkillFactory
	Team  *TeamFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:  NewUserFactory(),
		Skill: NewSkillFactory(),
		Team:  NewTeamFactory(),
	}
}

// Seeder writes fixtures straight through GORM, bypassing repositories and authorization
type Seeder struct {
	t         testing.TB
	db        *gorm.DB
	factories *FactorySet
}

// NewSeeder creates a Seeder bound to db
func NewSeeder(t testing.TB, db *gorm.DB) *Seeder {
	return &Seeder{t: t, db: db, factories: NewFactorySet()}
}

// User inserts a user holding the given global permissions
func (s *Seeder) User(permissions ...models.GlobalPermission) *models.User {
	s.t.Helper()
	user := s.factories.User.Create()
	require.NoError(s.t, s.db.Create(user).Error)
	for _, p := range permissions {
		require.NoError(s.t, s.db.Create(&models.UserGlobalPermission{UserID: user.ID, Permission: p}).Error)
	}
	return user
}

// Skill inserts a skill with the given name
func (s *Seeder) Skill(name string) *models.Skill {
	s.t.Helper()
	skill := s.factories.Skill.WithName(name)
	require.NoError(s.t, s.db.Create(skill).Error)
	return skill
}

// Team inserts a team with the given name
func (s *Seeder) Team(name string) *models.Team {
	s.t.Helper()
	team := s.factories.Team.WithName(name)
	require.NoError(s.t, s.db.Create(team).Error)
	return team
}

// Member adds userID to teamID
func (s *Seeder) Member(teamID, userID int64, isAdmin bool) *models.TeamMember {
	s.t.Helper()
	member := &models.TeamMember{TeamID: teamID, UserID: userID, IsAdmin: isAdmin}
	require.NoError(s.t, s.db.Create(member).Error)
	return member
}

// TeamSkill assigns skillID to teamID
func (s *Seeder) TeamSkill(teamID, skillID int64) *models.TeamSkill {
	s.t.Helper()
	teamSkill := &models.TeamSkill{TeamID: teamID, SkillID: skillID}
	require.NoError(s.t, s.db.Create(teamSkill).Error)
	return teamSkill
}

// Prerequisite inserts the edge skillID -> prerequisiteID
func (s *Seeder) Prerequisite(skillID, prerequisiteID int64) {
	s.t.Helper()
	require.NoError(s.t, s.db.Create(&models.SkillPrerequisite{SkillID: skillID, SkillPrerequisiteID: prerequisiteID}).Error)
}

// Upvote records an upvote on teamSkillID by userID
func (s *Seeder) Upvote(teamSkillID, userID int64) {
	s.t.Helper()
	require.NoError(s.t, s.db.Create(&models.TeamSkillUpvote{TeamSkillID: teamSkillID, UserID: userID}).Error)
}
