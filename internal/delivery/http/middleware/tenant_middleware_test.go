package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ecclesia/internal/delivery/context"
	domainerrors "ecclesia/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTenantMiddleware(t *testing.T, header string) (*uuid.UUID, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderTenantID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *uuid.UUID
	handler := NewTenantMiddleware().Resolve(func(c echo.Context) error {
		resolved = deliverycontext.GetTenantID(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	return resolved, handler(c)
}

func TestTenantMiddleware_AbsentHeaderMeansGlobalMode(t *testing.T) {
	resolved, err := runTenantMiddleware(t, "")

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestTenantMiddleware_ValidHeaderIsResolved(t *testing.T) {
	tenantID := uuid.New()

	resolved, err := runTenantMiddleware(t, tenantID.String())

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, tenantID, *resolved)
}

func TestTenantMiddleware_UppercaseHeaderIsCanonicalized(t *testing.T) {
	resolved, err := runTenantMiddleware(t, "A1B2C3D4-E5F6-4789-8ABC-DEF012345678")

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "a1b2c3d4-e5f6-4789-8abc-def012345678", resolved.String())
}

func TestTenantMiddleware_MalformedHeaderIsRejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "not a uuid", header: "not-a-uuid"},
		{name: "missing hyphens", header: "a1b2c3d4e5f647898abcdef012345678"},
		{name: "urn form", header: "urn:uuid:a1b2c3d4-e5f6-4789-8abc-def012345678"},
		{name: "braced form", header: "{a1b2c3d4-e5f6-4789-8abc-def012345678}"},
		{name: "version zero", header: "a1b2c3d4-e5f6-0789-8abc-def012345678"},
		{name: "bad variant", header: "a1b2c3d4-e5f6-4789-0abc-def012345678"},
		{name: "truncated", header: "a1b2c3d4-e5f6-4789-8abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runTenantMiddleware(t, tt.header)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidTenantID)
		})
	}
}
