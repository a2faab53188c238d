package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/jivitesh-dev/portfolio_api/middleware"
	"github.com/jivitesh-dev/portfolio_api/services/handlers"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

type HttpService struct {
	context.DefaultService

	contactSvc   *ContactService
	emailSvc     *EmailService
	analyticsSvc *AnalyticsService
	adminMw      *middleware.AdminAuthMiddleware

	port       int
	corsOrigin string
	server     *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.corsOrigin = os.Getenv("CORS_ORIGIN")
	if svc.corsOrigin == "" {
		svc.corsOrigin = "*"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.contactSvc = svc.Service(CONTACT_SVC).(*ContactService)
	svc.emailSvc = svc.Service(EMAIL_SVC).(*EmailService)
	svc.analyticsSvc = svc.Service(ANALYTICS_SVC).(*AnalyticsService)
	svc.adminMw = svc.Service(middleware.ADMIN_AUTH_SVC).(*middleware.AdminAuthMiddleware)

	app := fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: svc.corsOrigin,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type," + shared.HeaderAdminKey,
	}))
	app.Use(svc.requestMetrics)

	contactHandler := handlers.NewContactHandler(svc.contactSvc)
	adminHandler := handlers.NewAdminHandler(svc.contactSvc)
	systemHandler := handlers.NewSystemHandler(svc.emailSvc, svc.analyticsSvc)

	api := app.Group("/api")
	api.Get("/health", systemHandler.Health)
	api.Post("/contact", contactHandler.Submit)
	api.Get("/messages", svc.adminMw.RequireAdmin(), adminHandler.ListMessages)
	api.Post("/analytics", systemHandler.TrackEvent)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError("Endpoint not found")
	})

	svc.server = app

	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// handleError maps AppErrors to their status and flat error body. Every
// other error is logged in full and answered with a generic 500; detail
// never reaches the client.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("path", c.Path()).Msg("Request failed")
		}
		return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		// Routing misses, wrong method included, are all 404s here.
		if fiberErr.Code == fiber.StatusNotFound || fiberErr.Code == fiber.StatusMethodNotAllowed {
			return shared.ResponseError(c, fiber.StatusNotFound, "Endpoint not found")
		}
		return shared.ResponseError(c, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseError(c, http.StatusInternalServerError, "Internal server error")
}

func (svc *HttpService) requestMetrics(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok {
			status = appErr.StatusCode
		} else if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else {
			status = http.StatusInternalServerError
		}
	}

	httpRequestsTotal.WithLabelValues(c.Path(), c.Method(), strconv.Itoa(status)).Inc()
	return err
}
