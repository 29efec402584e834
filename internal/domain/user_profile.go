package domain

import (
	"fmt"
	"time"
)

// Principal is the opaque caller identity assigned by the external
// authentication layer. The zero value is the anonymous caller.
type Principal string

// Anonymous marks an unauthenticated caller.
const Anonymous Principal = ""

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p == Anonymous
}

// UserRole gates operation visibility.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// ParseUserRole maps the external string form to a role, rejecting
// unrecognized values at the boundary.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleUser, RoleGuest:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// UserProfile is the per-principal identity record. Exactly one per principal.
type UserProfile struct {
	Principal Principal
	Name      string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}
