package usecase

import (
	"context"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// CongregationInput carries the mutable fields of a congregation record.
type CongregationInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Plan    string
}

// CongregationUsecase defines congregation (tenant) CRUD operations.
type CongregationUsecase interface {
	List(ctx context.Context) ([]*entity.Congregation, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Congregation, error)
	Create(ctx context.Context, input *CongregationInput) (*entity.Congregation, error)
	Update(ctx context.Context, id uuid.UUID, input *CongregationInput) (*entity.Congregation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
