package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/makeready-service/internal/domain"
)

const callerKey = "auth_caller"

// RoleResolver resolves the role attached to a principal's profile.
// Principals without a profile resolve to guest.
type RoleResolver interface {
	ResolveRole(ctx context.Context, principal domain.Principal) (domain.UserRole, error)
}

// IdentityMiddleware resolves the caller for every request. Resolution never
// fails: missing, malformed, or expired tokens yield the anonymous caller and
// the role authority denies anything non-public downstream.
type IdentityMiddleware struct {
	tokens *TokenManager
	roles  RoleResolver
}

// NewIdentityMiddleware constructs middleware.
func NewIdentityMiddleware(tokens *TokenManager, roles RoleResolver) *IdentityMiddleware {
	return &IdentityMiddleware{tokens: tokens, roles: roles}
}

// Handle attaches the resolved caller to the request context.
func (m *IdentityMiddleware) Handle(c *fiber.Ctx) error {
	caller := AnonymousCaller()

	if principal, ok := m.principalFromHeader(c.Get("Authorization")); ok {
		role, err := m.roles.ResolveRole(c.Context(), principal)
		if err != nil {
			role = domain.RoleGuest
		}
		caller = Caller{Principal: principal, Role: role}
	}

	c.Locals(callerKey, caller)
	return c.Next()
}

func (m *IdentityMiddleware) principalFromHeader(header string) (domain.Principal, bool) {
	if header == "" {
		return domain.Anonymous, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return domain.Anonymous, false
	}
	principal, err := m.tokens.ParseToken(parts[1])
	if err != nil || principal.IsAnonymous() {
		return domain.Anonymous, false
	}
	return principal, true
}

// CallerFromContext retrieves the resolved caller. The anonymous caller is
// returned when the middleware did not run.
func CallerFromContext(c *fiber.Ctx) Caller {
	val := c.Locals(callerKey)
	if val == nil {
		return AnonymousCaller()
	}
	caller, ok := val.(Caller)
	if !ok {
		return AnonymousCaller()
	}
	return caller
}
