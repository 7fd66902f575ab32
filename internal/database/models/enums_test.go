package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlobalPermission(t *testing.T) {
	t.Run("every declared permission round-trips", func(t *testing.T) {
		for _, p := range AllGlobalPermissions() {
			parsed, err := ParseGlobalPermission(string(p))
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		parsed, err := ParseGlobalPermission("  skills_list_admin ")
		require.NoError(t, err)
		assert.Equal(t, GlobalPermissionSkillsListAdmin, parsed)
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ParseGlobalPermission("SUPERUSER")
		assert.Error(t, err)
		assert.False(t, GlobalPermission("").IsValid())
	})
}

func TestPermissionSet(t *testing.T) {
	t.Run("intersects when one permission is shared", func(t *testing.T) {
		held := NewPermissionSet(GlobalPermissionReader, GlobalPermissionTeamsListAdmin)
		sufficient := NewPermissionSet(GlobalPermissionAdmin, GlobalPermissionTeamsListAdmin)
		assert.True(t, held.Intersects(sufficient))
		assert.True(t, sufficient.Intersects(held))
	})

	t.Run("does not intersect disjoint sets", func(t *testing.T) {
		held := NewPermissionSet(GlobalPermissionGuest)
		sufficient := NewPermissionSet(GlobalPermissionAdmin, GlobalPermissionReader)
		assert.False(t, held.Intersects(sufficient))
	})

	t.Run("empty set never intersects", func(t *testing.T) {
		assert.False(t, NewPermissionSet().Intersects(NewPermissionSet(GlobalPermissionAdmin)))
	})

	t.Run("strings are sorted and deduplicated", func(t *testing.T) {
		set := NewPermissionSet(GlobalPermissionReader, GlobalPermissionAdmin, GlobalPermissionReader)
		assert.Equal(t, []string{"ADMIN", "READER"}, set.Strings())
	})
}

func TestSkillType(t *testing.T) {
	assert.True(t, SkillTypeSkill.IsValid())
	assert.True(t, SkillTypeTechnology.IsValid())
	assert.False(t, SkillType("LANGUAGE").IsValid())
}
