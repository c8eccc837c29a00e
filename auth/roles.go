// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

// Role is a privilege tier carried in a session token
type Role string

const (
	RoleNone  Role = ""
	RoleMod   Role = "mod"
	RoleAdmin Role = "admin"
)

// admits maps each required tier to the roles that satisfy it.
// Anything not listed is denied.
var admits = map[Role]map[Role]bool{
	RoleMod:   {RoleMod: true, RoleAdmin: true},
	RoleAdmin: {RoleAdmin: true},
}

// IsAuthorized reports whether role satisfies minRole.
// An empty minRole admits everyone, including unauthenticated callers.
func IsAuthorized(role, minRole Role) bool {
	if minRole == RoleNone {
		return true
	}
	return admits[minRole][role]
}

// Valid reports whether r is one of the named tiers
func (r Role) Valid() bool {
	return r == RoleMod || r == RoleAdmin
}
