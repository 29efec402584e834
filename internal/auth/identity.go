package auth

import "github.com/spec-kit/makeready-service/internal/domain"

// Caller is the resolved identity for a single request: the principal from
// the bearer token plus the role looked up from the profile store. It is
// passed explicitly into every service operation.
type Caller struct {
	Principal domain.Principal
	Role      domain.UserRole
}

// AnonymousCaller is the identity used when no valid token is presented.
// Anonymous callers are a valid result, gating public operations.
func AnonymousCaller() Caller {
	return Caller{Principal: domain.Anonymous, Role: domain.RoleGuest}
}

// IsAnonymous reports whether the caller carries no identity.
func (c Caller) IsAnonymous() bool {
	return c.Principal.IsAnonymous()
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return !c.IsAnonymous() && c.Role == domain.RoleAdmin
}
