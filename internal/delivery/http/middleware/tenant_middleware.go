package middleware

import (
	"regexp"
	"strings"

	deliverycontext "ecclesia/internal/delivery/context"
	domainerrors "ecclesia/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tenantIDPattern is the strict shape a tenant header must have: canonical
// hyphenated UUID of version 1 through 5. uuid.Parse alone is too lenient
// (it accepts URNs and braced forms), so the shape is checked first.
var tenantIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// TenantMiddleware resolves the request tenant from the x-congregacao-id
// header. An absent header means global mode; a malformed one is a 400.
type TenantMiddleware struct{}

// NewTenantMiddleware creates a new tenant resolution middleware.
func NewTenantMiddleware() *TenantMiddleware {
	return &TenantMiddleware{}
}

// Resolve validates the tenant header and, when present, stores the
// canonical (lowercase) tenant ID on the request context.
func (m *TenantMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderTenantID))
		if raw == "" {
			return next(c)
		}

		if !tenantIDPattern.MatchString(raw) {
			return errors.Wrap(domainerrors.ErrInvalidTenantID, "malformed tenant header")
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidTenantID, "malformed tenant header")
		}

		ctx := deliverycontext.WithTenantID(c.Request().Context(), tenantID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
