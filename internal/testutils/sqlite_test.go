package testutils

import (
	"testing"

	"skills-tracker-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB(t *testing.T) {
	t.Run("databases are isolated", func(t *testing.T) {
		first := NewSQLiteDB(t)
		second := NewSQLiteDB(t)

		NewSeeder(t, first).Skill("go")

		var count int64
		require.NoError(t, second.Model(&models.Skill{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("foreign keys cascade", func(t *testing.T) {
		db := NewSQLiteDB(t)
		seed := NewSeeder(t, db)
		team := seed.Team("platform")
		user := seed.User(models.GlobalPermissionReader)
		seed.Member(team.ID, user.ID, true)

		require.NoError(t, db.Delete(&models.Team{}, team.ID).Error)

		var count int64
		require.NoError(t, db.Model(&models.TeamMember{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("foreign keys are enforced", func(t *testing.T) {
		db := NewSQLiteDB(t)
		err := db.Create(&models.TeamMember{TeamID: 404, UserID: 404}).Error
		assert.Error(t, err)
	})
}
