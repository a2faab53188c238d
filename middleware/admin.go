package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/jivitesh-dev/portfolio_api/shared"
)

// AdminAuthMiddleware gates operator-only routes behind a shared secret
// supplied in the X-Admin-Key header.
type AdminAuthMiddleware struct {
	context.DefaultService

	adminKey string
}

const ADMIN_AUTH_SVC = "admin_auth"

func (svc AdminAuthMiddleware) Id() string {
	return ADMIN_AUTH_SVC
}

func (svc *AdminAuthMiddleware) Configure(ctx *context.Context) error {
	svc.adminKey = os.Getenv("ADMIN_KEY")
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminAuthMiddleware) Start() error {
	if svc.adminKey == "" {
		log.Warn("ADMIN_KEY not configured, admin routes will reject all requests")
	}
	return nil
}

// RequireAdmin rejects with 401 unless the header exactly matches the
// configured secret. An unset secret never becomes an open door.
func (svc *AdminAuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get(shared.HeaderAdminKey)

		if svc.adminKey == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(supplied), []byte(svc.adminKey)) != 1 {
			return shared.ResponseError(c, http.StatusUnauthorized, "Unauthorized")
		}

		return c.Next()
	}
}
