package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleTeknisi, NormalizeRole(RoleTechnicianLegacy))
	assert.Equal(t, RoleTeknisi, NormalizeRole(RoleTeknisi))
	assert.Equal(t, RoleUser, NormalizeRole(RoleUser))
	assert.Equal(t, RoleAdmin, NormalizeRole(RoleAdmin))
	assert.Equal(t, "moderator", NormalizeRole("moderator"))
}

func TestOwnerRoleSynonyms(t *testing.T) {
	t.Run("TeknisiIncludesLegacyLabel", func(t *testing.T) {
		assert.Equal(t, []string{RoleTeknisi, RoleTechnicianLegacy}, OwnerRoleSynonyms(RoleTeknisi))
	})

	t.Run("LegacyLabelResolvesToSameSet", func(t *testing.T) {
		assert.Equal(t, OwnerRoleSynonyms(RoleTeknisi), OwnerRoleSynonyms(RoleTechnicianLegacy))
	})

	t.Run("UserHasSingleLabel", func(t *testing.T) {
		assert.Equal(t, []string{RoleUser}, OwnerRoleSynonyms(RoleUser))
	})
}
