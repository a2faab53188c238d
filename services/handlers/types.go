package handlers

import (
	"context"

	"github.com/jivitesh-dev/portfolio_api/dto"
)

type ContactServiceInterface interface {
	Submit(ctx context.Context, req dto.ContactRequest, clientIP string) (*dto.ContactResponse, error)
	Messages(ctx context.Context) (*dto.MessageListResponse, error)
}

type AnalyticsServiceInterface interface {
	Track(ctx context.Context, event string)
}

type EmailStatusInterface interface {
	Configured() bool
}
