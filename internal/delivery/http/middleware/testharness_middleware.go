package middleware

import (
	"ecclesia/config"
	deliverycontext "ecclesia/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerTestAccountID lets integration harnesses impersonate an account
// without minting a token. Honored only when testRoutes.enabled is set.
const headerTestAccountID = "x-user-id"

// TestHarnessMiddleware injects a synthetic identity from the x-user-id
// header. It never overrides an identity set by real authentication and is
// a no-op unless test routes are enabled in configuration.
type TestHarnessMiddleware struct {
	enabled bool
}

// NewTestHarnessMiddleware is the constructor for TestHarnessMiddleware.
func NewTestHarnessMiddleware(cfg *config.Config) *TestHarnessMiddleware {
	enabled := cfg != nil && cfg.TestRoutes != nil && cfg.TestRoutes.Enabled

	return &TestHarnessMiddleware{enabled: enabled}
}

// Handle applies the synthetic identity when the harness header is present.
func (m *TestHarnessMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ctx := c.Request().Context()
		if deliverycontext.GetIdentity(ctx) != nil {
			return next(c)
		}

		raw := c.Request().Header.Get(headerTestAccountID)
		if raw == "" {
			return next(c)
		}

		accountID, err := uuid.Parse(raw)
		if err != nil {
			return next(c)
		}

		ctx = deliverycontext.WithIdentity(ctx, &deliverycontext.Identity{AccountID: accountID})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
