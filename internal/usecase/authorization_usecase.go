package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthorizeInput is one authorization question: may this caller perform
// this action on this resource, given the request's tenant and target?
type AuthorizeInput struct {
	// HasIdentity is false for anonymous requests, which always fail closed.
	HasIdentity bool
	// AccountID identifies the caller when HasIdentity is true.
	AccountID uuid.UUID
	// TenantID is the tenant resolved from the request, nil in global mode.
	TenantID *uuid.UUID
	// Resource and Action name the attempted operation, e.g. "members", "update".
	Resource string
	Action   string
	// TargetID is the specific record acted on, nil for collection-level
	// actions such as create and list.
	TargetID *uuid.UUID
}

// AuthorizationUsecase is the permission evaluator. Authorize returns nil to
// allow, or a domain error carrying the denial status: unauthenticated,
// forbidden, or not-found when a named target does not exist.
type AuthorizationUsecase interface {
	Authorize(ctx context.Context, input *AuthorizeInput) error
}
