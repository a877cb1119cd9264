// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a plain resident or staff user.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates a platform-wide administrator.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// CanManage reports whether users with this role may manage an address.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole normalizes the spellings the backend uses for roles
// ("SUPER_ADMIN", "super-admin", "superadmin").
func ParseRole(s string) Role {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "superadmin" {
		normalized = string(RoleSuperAdmin)
	}

	return Role(normalized)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ManagerRoles are the roles eligible for address management.
func ManagerRoles() Roles {
	return Roles{RoleAdmin, RoleSuperAdmin}
}
