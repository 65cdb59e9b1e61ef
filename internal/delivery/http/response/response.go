// Package response defines the wire shapes shared by all HTTP handlers.
// Success bodies are bare DTOs written by the handlers themselves; only the
// error shape is centralized here.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error wire shape. Message strings are part of the API
// contract; Code is a machine-readable supplement.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error writes an error body with the given status.
func Error(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorBody{Message: message, Code: code})
}
