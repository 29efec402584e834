package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/makeready-service/internal/api/dto"
	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/service"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// PropertiesHandler manages the property registry endpoints.
type PropertiesHandler struct {
	service *service.PropertyService
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(propertyService *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{service: propertyService}
}

// AddProperty POST /properties.
func (h *PropertiesHandler) AddProperty(c *fiber.Ctx) error {
	var req dto.AddPropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	property, err := h.service.AddProperty(c.Context(), auth.CallerFromContext(c), service.PropertyCreateInput{
		ID:      req.ID,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": propertyResponse(property)})
}

// ListProperties GET /properties.
func (h *PropertiesHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.service.ListProperties(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	items := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetProperty GET /properties/:id.
func (h *PropertiesHandler) GetProperty(c *fiber.Ctx) error {
	property, err := h.service.GetProperty(c.Context(), auth.CallerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": propertyResponse(property)})
}

func propertyResponse(property *domain.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:        property.ID,
		Address:   property.Address,
		City:      property.City,
		State:     property.State,
		Zip:       property.Zip,
		Owner:     string(property.Owner),
		CreatedAt: property.CreatedAt.UnixNano(),
	}
}
