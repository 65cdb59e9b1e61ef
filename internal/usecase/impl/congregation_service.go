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

const defaultCongregationPlan = "basico"

// congregationService implements the CongregationUsecase interface.
type congregationService struct {
	congregationRepo repository.CongregationRepository
	audit            usecase.AuditUsecase
	logger           *slog.Logger
}

// CongregationServiceParams holds dependencies for congregationService, injected by Fx.
type CongregationServiceParams struct {
	fx.In

	CongregationRepo repository.CongregationRepository
	Audit            usecase.AuditUsecase
	Logger           *slog.Logger
}

// NewCongregationService is the constructor for congregationService.
func NewCongregationService(params CongregationServiceParams) usecase.CongregationUsecase {
	return &congregationService{
		congregationRepo: params.CongregationRepo,
		audit:            params.Audit,
		logger:           params.Logger,
	}
}

func (srv *congregationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all congregations.
func (srv *congregationService) List(ctx context.Context) ([]*entity.Congregation, error) {
	congregations, err := srv.congregationRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list congregations")
	}

	return congregations, nil
}

// Get retrieves a single congregation by ID.
func (srv *congregationService) Get(ctx context.Context, id uuid.UUID) (*entity.Congregation, error) {
	congregation, err := srv.congregationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCongregationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "congregation not found")
		}

		return nil, errors.Wrap(err, "failed to find congregation")
	}

	return congregation, nil
}

// Create persists a new congregation. Tenants are only ever created here,
// explicitly; resolving an unknown tenant ID elsewhere never creates one.
func (srv *congregationService) Create(ctx context.Context, input *usecase.CongregationInput) (*entity.Congregation, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "congregation name is required")
	}

	plan := input.Plan
	if plan == "" {
		plan = defaultCongregationPlan
	}

	congregation := &entity.Congregation{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		Plan:    plan,
	}

	if err := srv.congregationRepo.Create(ctx, congregation); err != nil {
		return nil, errors.Wrap(err, "failed to create congregation")
	}

	srv.log(ctx).Info("Congregation created", slog.Any("congregationID", congregation.ID))
	srv.recordMutation(ctx, entity.AuditActionCreate, congregation.ID, nil, congregationSnapshot(congregation))

	return congregation, nil
}

// Update modifies an existing congregation.
func (srv *congregationService) Update(ctx context.Context, id uuid.UUID, input *usecase.CongregationInput) (*entity.Congregation, error) {
	congregation, err := srv.congregationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCongregationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "congregation not found")
		}

		return nil, errors.Wrap(err, "failed to find congregation for update")
	}

	oldValues := congregationSnapshot(congregation)

	if input.Name != "" {
		congregation.Name = input.Name
	}
	congregation.Address = input.Address
	congregation.Phone = input.Phone
	congregation.Email = input.Email
	if input.Plan != "" {
		congregation.Plan = input.Plan
	}

	if err := srv.congregationRepo.Update(ctx, congregation); err != nil {
		if errors.Is(err, repository.ErrCongregationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "congregation not found")
		}

		return nil, errors.Wrap(err, "failed to update congregation")
	}

	srv.log(ctx).Info("Congregation updated", slog.Any("congregationID", congregation.ID))
	srv.recordMutation(ctx, entity.AuditActionUpdate, congregation.ID, oldValues, congregationSnapshot(congregation))

	return congregation, nil
}

// Delete removes a congregation.
func (srv *congregationService) Delete(ctx context.Context, id uuid.UUID) error {
	congregation, err := srv.congregationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCongregationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "congregation not found")
		}

		return errors.Wrap(err, "failed to find congregation for delete")
	}

	if err := srv.congregationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCongregationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "congregation not found")
		}

		return errors.Wrap(err, "failed to delete congregation")
	}

	srv.log(ctx).Info("Congregation deleted", slog.Any("congregationID", id))
	srv.recordMutation(ctx, entity.AuditActionDelete, id, congregationSnapshot(congregation), nil)

	return nil
}

func (srv *congregationService) recordMutation(ctx context.Context, action string, congregationID uuid.UUID, oldValues, newValues any) {
	event := &usecase.AuditEvent{
		CongregationID: &congregationID,
		Action:         action,
		ResourceType:   "congregations",
		ResourceID:     &congregationID,
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

func congregationSnapshot(congregation *entity.Congregation) map[string]any {
	return map[string]any{
		"nome":     congregation.Name,
		"endereco": congregation.Address,
		"telefone": congregation.Phone,
		"email":    congregation.Email,
		"plano":    congregation.Plan,
	}
}
