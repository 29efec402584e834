package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CallerFromContext(c).IsAnonymous() {
			return apperrors.NewUnauthenticated("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. Anonymous callers get
// an authentication error rather than a role error.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFromContext(c)
		if caller.IsAnonymous() {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !caller.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
