package usecase

import (
	"context"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// FamilyInput carries the mutable fields of a family record.
type FamilyInput struct {
	Name          string
	Address       string
	PostalCode    string
	City          string
	State         string
	Phone         string
	ResponsibleID *uuid.UUID
	Notes         string
	Active        *bool
}

// FamilyListInput narrows and paginates family listings.
type FamilyListInput struct {
	Search string
	Page   int
	Limit  int
}

// FamilyListOutput is one page of families plus the total row count.
type FamilyListOutput struct {
	Families []*entity.Family
	Total    int64
	Page     int
	Limit    int
}

// FamilyUsecase defines family CRUD operations. Families always belong to a
// tenant, so every operation requires a resolved tenant on the context.
type FamilyUsecase interface {
	List(ctx context.Context, input *FamilyListInput) (*FamilyListOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Family, error)
	Create(ctx context.Context, input *FamilyInput) (*entity.Family, error)
	Update(ctx context.Context, id uuid.UUID, input *FamilyInput) (*entity.Family, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
