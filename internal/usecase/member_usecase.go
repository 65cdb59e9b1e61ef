package usecase

import (
	"context"
	"time"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// MemberInput carries the mutable fields of a member record.
type MemberInput struct {
	Name      string
	CPF       string
	BirthDate *time.Time
	Phone     string
	Email     string
	FamilyID  *uuid.UUID
}

// MemberUsecase defines member CRUD operations. All mutations are audited
// and stamped with the acting account and resolved tenant.
type MemberUsecase interface {
	List(ctx context.Context) ([]*entity.Member, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	Create(ctx context.Context, input *MemberInput) (*entity.Member, error)
	Update(ctx context.Context, id uuid.UUID, input *MemberInput) (*entity.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
