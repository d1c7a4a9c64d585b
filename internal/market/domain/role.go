package domain

import "strings"

// Role tags. Roles are immutable after signup; there is no promotion
// flow.
const (
	RoleUser   = "user"
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

// ValidRole reports whether the (already lower-cased) role is one of the
// fixed role tags.
func ValidRole(role string) bool {
	switch strings.ToLower(role) {
	case RoleUser, RoleFarmer, RoleAdmin:
		return true
	}
	return false
}
