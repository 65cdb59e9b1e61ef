package handler

import (
	"net/http"

	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImportHandler holds dependencies for bulk-import handlers.
type ImportHandler struct {
	uc usecase.ImportUsecase
}

// NewImportHandler is the constructor for ImportHandler, injected by Fx.
func NewImportHandler(uc usecase.ImportUsecase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Members ingests a multipart CSV upload under the "file" field and creates
// one member per valid row.
func (h *ImportHandler) Members(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing file upload"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unreadable file upload"))
	}
	defer file.Close()

	output, err := h.uc.ImportMembers(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}
