package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jivitesh-dev/portfolio_api/dto"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

type SystemHandler struct {
	emailSvc     EmailStatusInterface
	analyticsSvc AnalyticsServiceInterface
}

func NewSystemHandler(emailSvc EmailStatusInterface, analyticsSvc AnalyticsServiceInterface) *SystemHandler {
	return &SystemHandler{emailSvc: emailSvc, analyticsSvc: analyticsSvc}
}

// @Summary Health Check
// @Description Readiness probe, reports whether the email credential is configured
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.HealthResponse{
		Status:          "healthy",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		EmailConfigured: h.emailSvc.Configured(),
	})
}

// @Summary Track Analytics Event
// @Description Fire-and-forget event counter; a store failure never fails the caller
// @Tags system
// @Accept  json
// @Produce json
// @Param analyticsRequest body dto.AnalyticsRequest true "Event to track"
// @Success 200 {object} dto.AnalyticsResponse
// @Router /api/analytics [post]
func (h *SystemHandler) TrackEvent(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	h.analyticsSvc.Track(c.UserContext(), shared.Sanitize(req.Event, 100))

	return c.Status(fiber.StatusOK).JSON(dto.AnalyticsResponse{Tracked: true})
}
