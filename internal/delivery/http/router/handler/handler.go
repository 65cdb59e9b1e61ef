package handler

import (
	"net/http"

	domainerrors "ecclesia/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes a request body and runs the echo validator.
// Both failure modes are the wire-level missing-fields error.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses the :id path parameter. A non-UUID id cannot name an
// existing record, so it maps to not-found.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrNotFound, "path id is not a uuid")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
