// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is an account role carried in access tokens. Roles are issued by the
// account service; this service only reads them.
type Role string

const (
	RoleListener    Role = "listener"
	RoleMasjidAdmin Role = "masjid_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleListener || r == RoleMasjidAdmin
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings keeps the known roles of a token and drops the rest.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
