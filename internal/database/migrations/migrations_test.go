package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	assert.Equal(t, "00001_create_users.sql", files[0])
	assert.Equal(t, "00004_create_team_skills.sql", files[3])

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestPrerequisiteMigrationRejectsSelfLoops(t *testing.T) {
	body, err := fs.ReadFile(FS, "00002_create_skills.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "CHECK (skill_id <> skill_prerequisite_id)"))
	assert.Contains(t, string(body), "ON skill_prerequisites (skill_id, skill_prerequisite_id)")
}
