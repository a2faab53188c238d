package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jivitesh-dev/portfolio_api/dto"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

// newTestApp mirrors the production error mapping so handlers can be
// exercised end to end over app.Test.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder: shared.JSONMarshal,
		JSONDecoder: shared.JSONUnmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
			}
			return shared.ResponseError(c, http.StatusInternalServerError, "Internal server error")
		},
	})
}

type stubContactService struct {
	submitResp *dto.ContactResponse
	listResp   *dto.MessageListResponse
	err        error

	gotReq dto.ContactRequest
	gotIP  string
}

func (s *stubContactService) Submit(_ context.Context, req dto.ContactRequest, clientIP string) (*dto.ContactResponse, error) {
	s.gotReq = req
	s.gotIP = clientIP
	if s.err != nil {
		return nil, s.err
	}
	return s.submitResp, nil
}

func (s *stubContactService) Messages(context.Context) (*dto.MessageListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listResp, nil
}

type stubAnalyticsService struct {
	events []string
}

func (s *stubAnalyticsService) Track(_ context.Context, event string) {
	s.events = append(s.events, event)
}

type stubEmailStatus struct {
	configured bool
}

func (s stubEmailStatus) Configured() bool {
	return s.configured
}
