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

// RequestsHandler manages the service-request workflow endpoints.
type RequestsHandler struct {
	service *service.RequestService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService) *RequestsHandler {
	return &RequestsHandler{service: requestService}
}

// CreateRequest POST /requests.
func (h *RequestsHandler) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	urgency, err := domain.ParseRequestUrgency(req.Urgency)
	if err != nil {
		return apperrors.NewValidationError("unrecognized urgency", map[string]any{"urgency": req.Urgency})
	}

	request, err := h.service.CreateRequest(c.Context(), auth.CallerFromContext(c), service.RequestCreateInput{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		Urgency:     urgency,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": requestResponse(request)})
}

// ListRequests GET /requests.
func (h *RequestsHandler) ListRequests(c *fiber.Ctx) error {
	requests, err := h.service.ListRequests(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	items := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, requestResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetRequest GET /requests/:id.
func (h *RequestsHandler) GetRequest(c *fiber.Ctx) error {
	request, err := h.service.GetRequest(c.Context(), auth.CallerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(request)})
}

// UpdateStatus PATCH /requests/:id/status.
func (h *RequestsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, err := domain.ParseRequestStatus(req.Status)
	if err != nil {
		return apperrors.NewValidationError("unrecognized status", map[string]any{"status": req.Status})
	}

	request, err := h.service.UpdateStatus(c.Context(), auth.CallerFromContext(c), c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(request)})
}

// UploadPhoto POST /requests/:id/photos. The content reference is opaque;
// the bytes live with the external blob-storage collaborator.
func (h *RequestsHandler) UploadPhoto(c *fiber.Ctx) error {
	var req dto.UploadPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.service.UploadPhoto(c.Context(), auth.CallerFromContext(c), c.Params("id"), req.ContentRef)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestResponse(request)})
}

func requestResponse(request *domain.ServiceRequest) dto.ServiceRequestResponse {
	photos := request.Photos
	if photos == nil {
		photos = []string{}
	}
	return dto.ServiceRequestResponse{
		ID:          request.ID,
		PropertyID:  request.PropertyID,
		Title:       request.Title,
		Description: request.Description,
		Urgency:     string(request.Urgency),
		Status:      string(request.Status),
		CreatedBy:   string(request.CreatedBy),
		CreatedAt:   request.CreatedAt.UnixNano(),
		UpdatedAt:   request.UpdatedAt.UnixNano(),
		Photos:      photos,
	}
}
