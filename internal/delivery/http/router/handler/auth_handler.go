// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"ecclesia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// Register handles account registration. The password hash never appears in
// the response body.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, registerResponse{
		ID:    output.Account.ID.String(),
		Name:  output.Account.Name,
		Email: output.Account.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login handles credential verification and session creation.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh rotates the presented refresh token and mints a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout revokes the presented refresh token's session. Unknown tokens still
// succeed, so the response never reveals whether a session existed.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{})
}
