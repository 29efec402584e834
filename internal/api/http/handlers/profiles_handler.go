package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/makeready-service/internal/api/dto"
	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/service"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// ProfilesHandler manages caller-profile and role endpoints.
type ProfilesHandler struct {
	service *service.ProfileService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profileService *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{service: profileService}
}

// GetOwnProfile GET /profile. Returns null data when no profile exists so the
// UI can distinguish "needs onboarding" from an error.
func (h *ProfilesHandler) GetOwnProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetOwnProfile(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		if apperrors.IsCode(err, "NOT_FOUND") {
			return c.JSON(fiber.Map{"data": nil})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// SaveOwnProfile PUT /profile.
func (h *ProfilesHandler) SaveOwnProfile(c *fiber.Ctx) error {
	var req dto.SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.service.SaveOwnProfile(c.Context(), auth.CallerFromContext(c), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// GetOwnRole GET /profile/role.
func (h *ProfilesHandler) GetOwnRole(c *fiber.Ctx) error {
	role, err := h.service.GetOwnRole(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RoleResponse{Role: string(role)}})
}

// IsAdmin GET /profile/admin.
func (h *ProfilesHandler) IsAdmin(c *fiber.Ctx) error {
	admin, err := h.service.IsAdmin(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AdminCheckResponse{Admin: admin}})
}

// GetProfile GET /users/:principal/profile.
func (h *ProfilesHandler) GetProfile(c *fiber.Ctx) error {
	principal := domain.Principal(c.Params("principal"))
	profile, err := h.service.GetProfile(c.Context(), auth.CallerFromContext(c), principal)
	if err != nil {
		if apperrors.IsCode(err, "NOT_FOUND") {
			return c.JSON(fiber.Map{"data": nil})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// AssignRole PUT /users/:principal/role.
func (h *ProfilesHandler) AssignRole(c *fiber.Ctx) error {
	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	role, err := domain.ParseUserRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("unrecognized role", map[string]any{"role": req.Role})
	}

	target := domain.Principal(c.Params("principal"))
	if err := h.service.AssignRole(c.Context(), auth.CallerFromContext(c), target, role); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"principal": string(target), "role": string(role)}})
}

func profileResponse(profile *domain.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Principal: string(profile.Principal),
		Name:      profile.Name,
		Role:      string(profile.Role),
	}
}
