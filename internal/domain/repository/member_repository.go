package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMemberNotFound is returned when a member record is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines persistence for congregation member records.
type MemberRepository interface {
	ScopeFinder

	// FindByID retrieves a single member by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// List retrieves members, filtered by tenant when tenantID is non-nil.
	List(ctx context.Context, tenantID *uuid.UUID) ([]*entity.Member, error)

	// Create persists a new member.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies an existing member.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes a member record.
	Delete(ctx context.Context, id uuid.UUID) error
}
