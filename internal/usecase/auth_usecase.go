// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecclesia/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated token pair after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshOutput returns the rotated token pair. The presented refresh token
// is dead once this is produced.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
