package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	contactSvc ContactServiceInterface
}

func NewAdminHandler(contactSvc ContactServiceInterface) *AdminHandler {
	return &AdminHandler{contactSvc: contactSvc}
}

// @Summary List Contact Messages
// @Description Operator-only listing of every stored contact message
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin shared secret"
// @Success 200 {object} dto.MessageListResponse
// @Router /api/messages [get]
func (h *AdminHandler) ListMessages(c *fiber.Ctx) error {
	resp, err := h.contactSvc.Messages(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
