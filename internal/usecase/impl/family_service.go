package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// familyService implements the FamilyUsecase interface.
type familyService struct {
	familyRepo repository.FamilyRepository
	audit      usecase.AuditUsecase
	logger     *slog.Logger
}

// FamilyServiceParams holds dependencies for familyService, injected by Fx.
type FamilyServiceParams struct {
	fx.In

	FamilyRepo repository.FamilyRepository
	Audit      usecase.AuditUsecase
	Logger     *slog.Logger
}

// NewFamilyService is the constructor for familyService.
func NewFamilyService(params FamilyServiceParams) usecase.FamilyUsecase {
	return &familyService{
		familyRepo: params.FamilyRepo,
		audit:      params.Audit,
		logger:     params.Logger,
	}
}

func (srv *familyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireTenant returns the request tenant. Families always belong to one,
// so tenant-less requests are rejected up front.
func requireTenant(ctx context.Context) (*uuid.UUID, error) {
	tenantID := deliverycontext.GetTenantID(ctx)
	if tenantID == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a congregation is required for family operations")
	}

	return tenantID, nil
}

// List retrieves one page of the tenant's families.
func (srv *familyService) List(ctx context.Context, input *usecase.FamilyListInput) (*usecase.FamilyListOutput, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}

	families, total, err := srv.familyRepo.List(ctx, repository.FamilyListFilter{
		TenantID: *tenantID,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list families")
	}

	return &usecase.FamilyListOutput{
		Families: families,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// Get retrieves a single family by ID, restricted to the request tenant.
func (srv *familyService) Get(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}

	family, err := srv.familyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "family not found")
		}

		return nil, errors.Wrap(err, "failed to find family")
	}

	// A family in another tenant is indistinguishable from a missing one.
	if family.CongregationID != *tenantID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "family not found")
	}

	return family, nil
}

// Create persists a new family under the request tenant.
func (srv *familyService) Create(ctx context.Context, input *usecase.FamilyInput) (*entity.Family, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "family name is required")
	}

	family := &entity.Family{
		CongregationID: *tenantID,
		Name:           input.Name,
		Address:        input.Address,
		PostalCode:     input.PostalCode,
		City:           input.City,
		State:          input.State,
		Phone:          input.Phone,
		ResponsibleID:  input.ResponsibleID,
		Notes:          input.Notes,
		Active:         true,
	}
	if input.Active != nil {
		family.Active = *input.Active
	}
	if identity := deliverycontext.GetIdentity(ctx); identity != nil {
		accountID := identity.AccountID
		family.CreatedBy = &accountID
	}

	if err := srv.familyRepo.Create(ctx, family); err != nil {
		return nil, errors.Wrap(err, "failed to create family")
	}

	srv.log(ctx).Info("Family created", slog.Any("familyID", family.ID))
	srv.recordMutation(ctx, entity.AuditActionCreate, family.ID, nil, familySnapshot(family))

	return family, nil
}

// Update modifies an existing family of the request tenant.
func (srv *familyService) Update(ctx context.Context, id uuid.UUID, input *usecase.FamilyInput) (*entity.Family, error) {
	family, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValues := familySnapshot(family)

	if input.Name != "" {
		family.Name = input.Name
	}
	family.Address = input.Address
	family.PostalCode = input.PostalCode
	family.City = input.City
	family.State = input.State
	family.Phone = input.Phone
	family.ResponsibleID = input.ResponsibleID
	family.Notes = input.Notes
	if input.Active != nil {
		family.Active = *input.Active
	}

	if err := srv.familyRepo.Update(ctx, family); err != nil {
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "family not found")
		}

		return nil, errors.Wrap(err, "failed to update family")
	}

	srv.log(ctx).Info("Family updated", slog.Any("familyID", family.ID))
	srv.recordMutation(ctx, entity.AuditActionUpdate, family.ID, oldValues, familySnapshot(family))

	return family, nil
}

// Delete removes a family of the request tenant.
func (srv *familyService) Delete(ctx context.Context, id uuid.UUID) error {
	family, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.familyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "family not found")
		}

		return errors.Wrap(err, "failed to delete family")
	}

	srv.log(ctx).Info("Family deleted", slog.Any("familyID", id))
	srv.recordMutation(ctx, entity.AuditActionDelete, id, familySnapshot(family), nil)

	return nil
}

func (srv *familyService) recordMutation(ctx context.Context, action string, familyID uuid.UUID, oldValues, newValues any) {
	event := &usecase.AuditEvent{
		CongregationID: deliverycontext.GetTenantID(ctx),
		Action:         action,
		ResourceType:   "families",
		ResourceID:     &familyID,
		OldValues:      oldValues,
		NewValues:      newValues,
		Success:        true,
	}
	if identity := deliverycontext.GetIdentity(ctx); identity != nil {
		accountID := identity.AccountID
		event.AccountID = &accountID
	}

	srv.audit.Record(ctx, event)
}

func familySnapshot(family *entity.Family) map[string]any {
	return map[string]any{
		"nome_familia":       family.Name,
		"endereco":           family.Address,
		"cep":                family.PostalCode,
		"cidade":             family.City,
		"estado":             family.State,
		"telefone_principal": family.Phone,
		"responsavel_id":     family.ResponsibleID,
		"observacoes":        family.Notes,
		"ativo":              family.Active,
	}
}
