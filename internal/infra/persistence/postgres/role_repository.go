package postgres

import (
	"context"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// Create persists a new role with its permission list.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRoleAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

// FindByName retrieves a single role by its unique name.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindByNames retrieves the roles whose names appear in the given set.
// Names without a stored record are silently omitted.
func (repo *roleRepository) FindByNames(ctx context.Context, names []string) ([]*entity.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by names")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// List retrieves all roles ordered by name.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Permissions: []entity.Permission(data.Permissions),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:          data.ID,
		Name:        data.Name,
		Permissions: model.PermissionsJSON(data.Permissions),
	}
}
