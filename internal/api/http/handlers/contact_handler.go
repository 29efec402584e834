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

// ContactHandler manages the public intake and its admin reads.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /contact. Open to anonymous callers; field validation is a UI
// concern, the intake never rejects a lead.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	form, err := h.service.Submit(c.Context(), auth.CallerFromContext(c), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contactFormResponse(form)})
}

// ListForms GET /contact.
func (h *ContactHandler) ListForms(c *fiber.Ctx) error {
	forms, err := h.service.ListForms(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	items := make([]dto.ContactFormResponse, 0, len(forms))
	for i := range forms {
		items = append(items, contactFormResponse(&forms[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetForm GET /contact/:id.
func (h *ContactHandler) GetForm(c *fiber.Ctx) error {
	form, err := h.service.GetForm(c.Context(), auth.CallerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactFormResponse(form)})
}

func contactFormResponse(form *domain.ContactForm) dto.ContactFormResponse {
	return dto.ContactFormResponse{
		ID:          form.ID,
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		Message:     form.Message,
		SubmittedAt: form.SubmittedAt.UnixNano(),
	}
}
