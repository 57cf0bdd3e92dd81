package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"listener", "superuser", "masjid_admin", "listener"})

	assert.Equal(t, Roles{RoleListener, RoleMasjidAdmin}, roles)
	assert.True(t, roles.Contains(RoleMasjidAdmin))
}

func TestRolesFromStrings_Empty(t *testing.T) {
	roles := RolesFromStrings(nil)

	assert.Empty(t, roles)
	assert.False(t, roles.Contains(RoleListener))
}
