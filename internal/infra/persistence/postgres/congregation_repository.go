package postgres

import (
	"context"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// congregationRepository implements the domain.CongregationRepository interface using GORM.
type congregationRepository struct {
	db *gorm.DB
}

// NewCongregationRepository is the constructor for congregationRepository.
func NewCongregationRepository(db *gorm.DB) repository.CongregationRepository {
	return &congregationRepository{db: db}
}

// FindByID retrieves a single congregation by its unique ID.
func (repo *congregationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Congregation, error) {
	var congregationM model.CongregationModel
	if err := repo.db.WithContext(ctx).
		Where("congregacao_id = ?", id).
		First(&congregationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCongregationNotFound
		}

		return nil, errors.Wrap(err, "failed to find congregation by id")
	}

	return toCongregationDomain(&congregationM), nil
}

// FindResourceScope reports a congregation record's scope. A congregation is
// its own tenant and has no individual owner.
func (repo *congregationRepository) FindResourceScope(ctx context.Context, id uuid.UUID) (*entity.ResourceScope, error) {
	var congregationM model.CongregationModel
	if err := repo.db.WithContext(ctx).
		Select("congregacao_id").
		Where("congregacao_id = ?", id).
		First(&congregationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find congregation scope")
	}

	tenantID := congregationM.ID

	return &entity.ResourceScope{TenantID: &tenantID}, nil
}

// List retrieves all congregations ordered by name.
func (repo *congregationRepository) List(ctx context.Context) ([]*entity.Congregation, error) {
	var congregationModels []*model.CongregationModel
	if err := repo.db.WithContext(ctx).
		Order("nome ASC").
		Find(&congregationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list congregations")
	}

	congregations := make([]*entity.Congregation, 0, len(congregationModels))
	for _, congregationM := range congregationModels {
		congregations = append(congregations, toCongregationDomain(congregationM))
	}

	return congregations, nil
}

// Create persists a new congregation.
func (repo *congregationRepository) Create(ctx context.Context, congregation *entity.Congregation) error {
	congregationM := fromCongregationDomain(congregation)

	if err := repo.db.WithContext(ctx).Create(congregationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required congregation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create congregation")
	}

	congregation.ID = congregationM.ID
	congregation.CreatedAt = congregationM.CreatedAt
	congregation.UpdatedAt = congregationM.UpdatedAt

	return nil
}

// Update modifies an existing congregation.
func (repo *congregationRepository) Update(ctx context.Context, congregation *entity.Congregation) error {
	congregationM := fromCongregationDomain(congregation)

	result := repo.db.WithContext(ctx).
		Model(&model.CongregationModel{}).
		Where("congregacao_id = ?", congregation.ID).
		Updates(map[string]any{
			"nome":     congregationM.Name,
			"endereco": congregationM.Address,
			"telefone": congregationM.Phone,
			"email":    congregationM.Email,
			"plano":    congregationM.Plan,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update congregation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCongregationNotFound
	}

	return nil
}

// Delete removes a congregation record.
func (repo *congregationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("congregacao_id = ?", id).
		Delete(&model.CongregationModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("congregation still has dependent records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete congregation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCongregationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCongregationDomain converts a GORM CongregationModel to a domain Congregation entity.
func toCongregationDomain(data *model.CongregationModel) *entity.Congregation {
	if data == nil {
		return nil
	}

	return &entity.Congregation{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		Email:     data.Email,
		Plan:      data.Plan,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCongregationDomain converts a domain Congregation entity to a GORM CongregationModel.
func fromCongregationDomain(data *entity.Congregation) *model.CongregationModel {
	if data == nil {
		return nil
	}

	return &model.CongregationModel{
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
		Phone:   data.Phone,
		Email:   data.Email,
		Plan:    data.Plan,
	}
}
