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

// familyRepository implements the domain.FamilyRepository interface using GORM.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository is the constructor for familyRepository.
func NewFamilyRepository(db *gorm.DB) repository.FamilyRepository {
	return &familyRepository{db: db}
}

// FindByID retrieves a single family by its unique ID.
func (repo *familyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	var familyM model.FamilyModel
	if err := repo.db.WithContext(ctx).
		Where("familia_id = ?", id).
		First(&familyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFamilyNotFound
		}

		return nil, errors.Wrap(err, "failed to find family by id")
	}

	return toFamilyDomain(&familyM), nil
}

// FindResourceScope loads only the columns authorization scope checks need.
func (repo *familyRepository) FindResourceScope(ctx context.Context, id uuid.UUID) (*entity.ResourceScope, error) {
	var familyM model.FamilyModel
	if err := repo.db.WithContext(ctx).
		Select("congregacao_id", "created_by").
		Where("familia_id = ?", id).
		First(&familyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find family scope")
	}

	tenantID := familyM.CongregationID

	return &entity.ResourceScope{
		TenantID: &tenantID,
		OwnerID:  familyM.CreatedBy,
	}, nil
}

// List retrieves families matching the filter, with the total row count before pagination.
func (repo *familyRepository) List(ctx context.Context, filter repository.FamilyListFilter) ([]*entity.Family, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FamilyModel{}).
		Where("congregacao_id = ?", filter.TenantID)
	if filter.Search != "" {
		query = query.Where("nome_familia ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count families")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var familyModels []*model.FamilyModel
	if err := query.
		Order("nome_familia ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&familyModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list families")
	}

	families := make([]*entity.Family, 0, len(familyModels))
	for _, familyM := range familyModels {
		families = append(families, toFamilyDomain(familyM))
	}

	return families, total, nil
}

// Create persists a new family.
func (repo *familyRepository) Create(ctx context.Context, family *entity.Family) error {
	familyM := fromFamilyDomain(family)

	if err := repo.db.WithContext(ctx).Create(familyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid congregation or member reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required family information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create family")
	}

	family.ID = familyM.ID
	family.CreatedAt = familyM.CreatedAt
	family.UpdatedAt = familyM.UpdatedAt

	return nil
}

// Update modifies an existing family.
func (repo *familyRepository) Update(ctx context.Context, family *entity.Family) error {
	familyM := fromFamilyDomain(family)

	result := repo.db.WithContext(ctx).
		Model(&model.FamilyModel{}).
		Where("familia_id = ?", family.ID).
		Updates(map[string]any{
			"nome_familia":       familyM.Name,
			"endereco":           familyM.Address,
			"cep":                familyM.PostalCode,
			"cidade":             familyM.City,
			"estado":             familyM.State,
			"telefone_principal": familyM.Phone,
			"responsavel_id":     familyM.ResponsibleID,
			"observacoes":        familyM.Notes,
			"ativo":              familyM.Active,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid member reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update family")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFamilyNotFound
	}

	return nil
}

// Delete removes a family record.
func (repo *familyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("familia_id = ?", id).
		Delete(&model.FamilyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete family")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFamilyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFamilyDomain converts a GORM FamilyModel to a domain Family entity.
func toFamilyDomain(data *model.FamilyModel) *entity.Family {
	if data == nil {
		return nil
	}

	return &entity.Family{
		ID:             data.ID,
		CongregationID: data.CongregationID,
		Name:           data.Name,
		Address:        data.Address,
		PostalCode:     data.PostalCode,
		City:           data.City,
		State:          data.State,
		Phone:          data.Phone,
		ResponsibleID:  data.ResponsibleID,
		Notes:          data.Notes,
		Active:         data.Active,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromFamilyDomain converts a domain Family entity to a GORM FamilyModel.
func fromFamilyDomain(data *entity.Family) *model.FamilyModel {
	if data == nil {
		return nil
	}

	return &model.FamilyModel{
		ID:             data.ID,
		CongregationID: data.CongregationID,
		Name:           data.Name,
		Address:        data.Address,
		PostalCode:     data.PostalCode,
		City:           data.City,
		State:          data.State,
		Phone:          data.Phone,
		ResponsibleID:  data.ResponsibleID,
		Notes:          data.Notes,
		Active:         data.Active,
		CreatedBy:      data.CreatedBy,
	}
}
