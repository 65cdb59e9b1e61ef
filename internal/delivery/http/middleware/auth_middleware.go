package middleware

import (
	"strings"

	deliverycontext "ecclesia/internal/delivery/context"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates JWT access tokens and attaches the caller's
// identity to the request context.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires a valid Bearer access token. Every failure mode,
// missing header, wrong scheme, bad signature, expired token, produces the
// same unauthenticated error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// An identity may already be present, e.g. injected by the test
		// harness middleware. Do not demand a token twice.
		if deliverycontext.GetIdentity(c.Request().Context()) != nil {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header is not a bearer token")
		}

		claims, err := m.tokens.ValidateAccessToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "invalid or expired access token")
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), &deliverycontext.Identity{
			AccountID: claims.AccountID,
			Roles:     claims.Roles,
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
