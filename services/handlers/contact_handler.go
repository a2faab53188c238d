package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jivitesh-dev/portfolio_api/dto"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

type ContactHandler struct {
	contactSvc ContactServiceInterface
}

func NewContactHandler(contactSvc ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// @Summary Submit Contact Message
// @Description Validates, rate limits and stores a contact form submission, then sends notification and confirmation emails
// @Tags contact
// @Accept  json
// @Produce json
// @Param contactRequest body dto.ContactRequest true "Contact submission"
// @Success 200 {object} dto.ContactResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	resp, err := h.contactSvc.Submit(c.UserContext(), req, shared.ClientIP(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
