// Package seed loads an initial skill catalogue and team roster from YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the document read by Load
type File struct {
	// Creator is the username recorded as creator of every seeded skill and team
	Creator string      `yaml:"creator"`
	Skills  []SkillData `yaml:"skills"`
	Teams   []TeamData  `yaml:"teams"`
}

type SkillData struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type,omitempty"`
	Prerequisites []string `yaml:"prerequisites,omitempty"`
}

type TeamData struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills,omitempty"`
}

// Summary counts the rows a run actually inserted
type Summary struct {
	Skills        int
	Prerequisites int
	Teams         int
	TeamSkills    int
}

// Loader writes a File through the repositories; existing rows are kept
type Loader struct {
	users      repository.UserRepositoryInterface
	skills     repository.SkillRepositoryInterface
	teams      repository.TeamRepositoryInterface
	teamSkills repository.TeamSkillRepositoryInterface
}

// NewLoader creates a loader backed by db
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{
		users:      repository.NewUserRepository(db),
		skills:     repository.NewSkillRepository(db),
		teams:      repository.NewTeamRepository(db),
		teamSkills: repository.NewTeamSkillRepository(db),
	}
}

// ReadFile parses a seed document from path
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and checks a seed document
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if strings.TrimSpace(file.Creator) == "" {
		return nil, apperrors.NewValidationError("creator", "is required")
	}

	declared := make(map[string]bool, len(file.Skills))
	for i := range file.Skills {
		skill := &file.Skills[i]
		skill.Name = strings.TrimSpace(skill.Name)
		if skill.Name == "" {
			return nil, apperrors.NewValidationError("skills", fmt.Sprintf("entry %d has no name", i))
		}
		if skill.Type == "" {
			skill.Type = string(models.SkillTypeSkill)
		}
		if !models.SkillType(skill.Type).IsValid() {
			return nil, apperrors.NewValidationError("skills", fmt.Sprintf("%s has unknown type %s", skill.Name, skill.Type))
		}
		declared[skill.Name] = true
	}
	for _, skill := range file.Skills {
		for _, name := range skill.Prerequisites {
			if name == skill.Name {
				return nil, apperrors.NewValidationError("skills", fmt.Sprintf("%s lists itself as a prerequisite", skill.Name))
			}
		}
	}
	for i, team := range file.Teams {
		if strings.TrimSpace(team.Name) == "" {
			return nil, apperrors.NewValidationError("teams", fmt.Sprintf("entry %d has no name", i))
		}
	}
	return &file, nil
}

// Load inserts skills, prerequisite edges, teams and team skills in that order.
// Prerequisites and team skills may name skills that already exist in the database.
func (l *Loader) Load(ctx context.Context, file *File) (*Summary, error) {
	creator, err := l.users.GetByUsername(ctx, file.Creator)
	if err != nil {
		return nil, fmt.Errorf("creator %s: %w", file.Creator, err)
	}

	summary := &Summary{}
	for _, data := range file.Skills {
		skill := &models.Skill{Name: data.Name, Type: models.SkillType(data.Type)}
		created, err := l.ignoreExisting(l.skills.Create(ctx, skill, creator.ID))
		if err != nil {
			return summary, fmt.Errorf("skill %s: %w", data.Name, err)
		}
		if created {
			summary.Skills++
		}
	}

	for _, data := range file.Skills {
		for _, name := range data.Prerequisites {
			created, err := l.addPrerequisite(ctx, data.Name, name)
			if err != nil {
				return summary, fmt.Errorf("prerequisite %s of %s: %w", name, data.Name, err)
			}
			if created {
				summary.Prerequisites++
			}
		}
	}

	for _, data := range file.Teams {
		team, created, err := l.ensureTeam(ctx, strings.TrimSpace(data.Name), creator.ID)
		if err != nil {
			return summary, fmt.Errorf("team %s: %w", data.Name, err)
		}
		if created {
			summary.Teams++
		}
		for _, name := range data.Skills {
			skill, err := l.skills.GetByName(ctx, strings.TrimSpace(name))
			if err != nil {
				return summary, fmt.Errorf("skill %s of team %s: %w", name, data.Name, err)
			}
			created, err := l.ignoreExisting(l.teamSkills.AddTeamSkill(ctx, &models.TeamSkill{TeamID: team.ID, SkillID: skill.ID}))
			if err != nil {
				return summary, fmt.Errorf("skill %s of team %s: %w", name, data.Name, err)
			}
			if created {
				summary.TeamSkills++
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"skills":        summary.Skills,
		"prerequisites": summary.Prerequisites,
		"teams":         summary.Teams,
		"team_skills":   summary.TeamSkills,
	}).Info("Seed data loaded")
	return summary, nil
}

func (l *Loader) addPrerequisite(ctx context.Context, skillName, prerequisiteName string) (bool, error) {
	skill, err := l.skills.GetByName(ctx, skillName)
	if err != nil {
		return false, err
	}
	prerequisite, err := l.skills.GetByName(ctx, strings.TrimSpace(prerequisiteName))
	if err != nil {
		return false, err
	}
	edge := &models.SkillPrerequisite{SkillID: skill.ID, SkillPrerequisiteID: prerequisite.ID}
	return l.ignoreExisting(l.skills.AddSkillPrerequisite(ctx, edge))
}

func (l *Loader) ensureTeam(ctx context.Context, name string, creatorID int64) (*models.Team, bool, error) {
	team, err := l.teams.GetByName(ctx, name)
	if err == nil {
		return team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	team = &models.Team{Name: name}
	if err := l.teams.Create(ctx, team, creatorID); err != nil {
		return nil, false, err
	}
	return team, true, nil
}

func (l *Loader) ignoreExisting(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if apperrors.IsAlreadyExists(err) {
		return false, nil
	}
	return false, err
}
