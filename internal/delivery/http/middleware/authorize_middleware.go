package middleware

import (
	deliverycontext "ecclesia/internal/delivery/context"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthorizeMiddleware runs the permission evaluator for a route. It must be
// used after Authenticate and Resolve so identity and tenant are in place.
type AuthorizeMiddleware struct {
	authorizer usecase.AuthorizationUsecase
}

// NewAuthorizeMiddleware is the constructor for AuthorizeMiddleware.
func NewAuthorizeMiddleware(authorizer usecase.AuthorizationUsecase) *AuthorizeMiddleware {
	return &AuthorizeMiddleware{authorizer: authorizer}
}

// Require builds a middleware demanding the given resource/action grant.
// Routes with an :id path parameter authorize against that specific record;
// an ID that is not a UUID cannot name an existing record, so it is a 404.
func (m *AuthorizeMiddleware) Require(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			input := &usecase.AuthorizeInput{
				TenantID: deliverycontext.GetTenantID(ctx),
				Resource: resource,
				Action:   action,
			}
			if identity := deliverycontext.GetIdentity(ctx); identity != nil {
				input.HasIdentity = true
				input.AccountID = identity.AccountID
			}

			if raw := c.Param("id"); raw != "" {
				targetID, err := uuid.Parse(raw)
				if err != nil {
					return errors.Wrap(domainerrors.ErrNotFound, "target id is not a uuid")
				}
				input.TargetID = &targetID
			}

			if err := m.authorizer.Authorize(ctx, input); err != nil {
				return err
			}

			return next(c)
		}
	}
}
