package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/repository"
	"skills-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const catalogue = `
creator: admin
skills:
  - name: Programming
  - name: Go
    type: TECHNOLOGY
    prerequisites: [Programming]
  - name: Concurrency
    prerequisites: [Go, Programming]
teams:
  - name: platform
    skills: [Go, Concurrency]
  - name: design
`

func newAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := repository.NewUserRepository(db)
	require.NoError(t, users.Create(context.Background(), &models.User{Username: "admin", PasswordHash: "x"}, models.GlobalPermissionAdmin))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "catalogue", input: catalogue},
		{name: "missing creator", input: "skills:\n  - name: Go\n", wantErr: true},
		{name: "blank skill name", input: "creator: admin\nskills:\n  - name: \"  \"\n", wantErr: true},
		{name: "unknown type", input: "creator: admin\nskills:\n  - name: Go\n    type: LANGUAGE\n", wantErr: true},
		{name: "self prerequisite", input: "creator: admin\nskills:\n  - name: Go\n    prerequisites: [Go]\n", wantErr: true},
		{name: "blank team name", input: "creator: admin\nteams:\n  - name: \"\"\n", wantErr: true},
		{name: "malformed yaml", input: "creator: [", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file, err := Parse([]byte(tc.input))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", file.Creator)
			assert.Len(t, file.Skills, 3)
			assert.Equal(t, string(models.SkillTypeSkill), file.Skills[0].Type)
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	newAdmin(t, db)
	file, err := Parse([]byte(catalogue))
	require.NoError(t, err)

	summary, err := NewLoader(db).Load(ctx, file)

	require.NoError(t, err)
	assert.Equal(t, &Summary{Skills: 3, Prerequisites: 3, Teams: 2, TeamSkills: 2}, summary)

	skills := repository.NewSkillRepository(db)
	goSkill, err := skills.GetByName(ctx, "Go")
	require.NoError(t, err)
	assert.Equal(t, models.SkillTypeTechnology, goSkill.Type)

	prerequisites, err := skills.GetSkillPrerequisites(ctx, goSkill.ID)
	require.NoError(t, err)
	require.Len(t, prerequisites, 1)
	assert.Equal(t, "Programming", prerequisites[0].Name)

	team, err := repository.NewTeamRepository(db).GetByName(ctx, "platform")
	require.NoError(t, err)
	teamSkills, err := repository.NewTeamSkillRepository(db).GetTeamSkills(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, teamSkills, 2)
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	newAdmin(t, db)
	file, err := Parse([]byte(catalogue))
	require.NoError(t, err)
	loader := NewLoader(db)

	_, err = loader.Load(ctx, file)
	require.NoError(t, err)
	summary, err := loader.Load(ctx, file)

	require.NoError(t, err)
	assert.Equal(t, &Summary{}, summary)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown creator", func(t *testing.T) {
		db := testutils.NewSQLiteDB(t)
		file, err := Parse([]byte(catalogue))
		require.NoError(t, err)

		_, err = NewLoader(db).Load(ctx, file)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("team skill that does not exist", func(t *testing.T) {
		db := testutils.NewSQLiteDB(t)
		newAdmin(t, db)
		file, err := Parse([]byte("creator: admin\nteams:\n  - name: platform\n    skills: [Rust]\n"))
		require.NoError(t, err)

		summary, err := NewLoader(db).Load(ctx, file)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Equal(t, 1, summary.Teams)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogue), 0o600))

	file, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Teams, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("creator: admin\nskills:\n  - name: Go\n    type: LANGUAGE\n"))
	assert.True(t, apperrors.IsValidation(err))
}
