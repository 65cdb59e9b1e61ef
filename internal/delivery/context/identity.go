package context

import (
	"context"

	"github.com/google/uuid"
)

const (
	// KeyIdentity is the key for storing the authenticated identity in context.
	KeyIdentity ContextKey = "identity"

	// KeyTenantID is the key for storing the resolved tenant ID in context.
	KeyTenantID ContextKey = "tenant_id"

	// HeaderTenantID is the HTTP header carrying the tenant (congregation) ID.
	HeaderTenantID = "x-congregacao-id"
)

// Identity is the authenticated caller extracted from a validated access token.
type Identity struct {
	AccountID uuid.UUID
	Roles     []string
}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the authenticated identity from context.
// Returns nil when the request is anonymous.
func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*Identity); ok {
		return identity
	}

	return nil
}

// WithTenantID returns a new context carrying the resolved tenant ID.
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyTenantID, tenantID)
}

// GetTenantID extracts the resolved tenant ID from context.
// Returns nil when the request carries no tenant header (global mode).
func GetTenantID(ctx context.Context) *uuid.UUID {
	if tenantID, ok := ctx.Value(KeyTenantID).(uuid.UUID); ok {
		return &tenantID
	}

	return nil
}
