package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/jivitesh-dev/portfolio_api/middleware"
	"github.com/jivitesh-dev/portfolio_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.RedisService{},
		&services.EmailService{},
		&services.RateLimitService{},
		&services.AnalyticsService{},
		&services.ContactService{},
		&middleware.AdminAuthMiddleware{},
		&services.MonitoringService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	if err := ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Service context exited")
		return
	}
}
