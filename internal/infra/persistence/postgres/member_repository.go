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

// memberRepository implements the domain.MemberRepository interface using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// FindByID retrieves a single member by its unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel
	if err := repo.db.WithContext(ctx).
		Where("membro_id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&memberM), nil
}

// FindResourceScope loads only the two columns authorization scope checks need.
func (repo *memberRepository) FindResourceScope(ctx context.Context, id uuid.UUID) (*entity.ResourceScope, error) {
	var memberM model.MemberModel
	if err := repo.db.WithContext(ctx).
		Select("congregacao_id", "created_by").
		Where("membro_id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find member scope")
	}

	return &entity.ResourceScope{
		TenantID: memberM.CongregationID,
		OwnerID:  memberM.CreatedBy,
	}, nil
}

// List retrieves members, filtered by tenant when tenantID is non-nil.
func (repo *memberRepository) List(ctx context.Context, tenantID *uuid.UUID) ([]*entity.Member, error) {
	query := repo.db.WithContext(ctx).Order("nome ASC")
	if tenantID != nil {
		query = query.Where("congregacao_id = ?", *tenantID)
	}

	var memberModels []*model.MemberModel
	if err := query.Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// Create persists a new member.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid congregation or family reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update modifies an existing member.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("membro_id = ?", member.ID).
		Updates(map[string]any{
			"nome":            memberM.Name,
			"cpf":             memberM.CPF,
			"data_nascimento": memberM.BirthDate,
			"telefone":        memberM.Phone,
			"email":           memberM.Email,
			"congregacao_id":  memberM.CongregationID,
			"familia_id":      memberM.FamilyID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid congregation or family reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// Delete removes a member record.
func (repo *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("membro_id = ?", id).
		Delete(&model.MemberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:             data.ID,
		Name:           data.Name,
		CPF:            data.CPF,
		BirthDate:      data.BirthDate,
		Phone:          data.Phone,
		Email:          data.Email,
		CongregationID: data.CongregationID,
		CreatedBy:      data.CreatedBy,
		FamilyID:       data.FamilyID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromMemberDomain converts a domain Member entity to a GORM MemberModel.
func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	return &model.MemberModel{
		ID:             data.ID,
		Name:           data.Name,
		CPF:            data.CPF,
		BirthDate:      data.BirthDate,
		Phone:          data.Phone,
		Email:          data.Email,
		CongregationID: data.CongregationID,
		CreatedBy:      data.CreatedBy,
		FamilyID:       data.FamilyID,
	}
}
