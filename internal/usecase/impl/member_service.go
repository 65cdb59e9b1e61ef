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

// memberService implements the MemberUsecase interface.
type memberService struct {
	memberRepo repository.MemberRepository
	audit      usecase.AuditUsecase
	logger     *slog.Logger
}

// MemberServiceParams holds dependencies for memberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Audit      usecase.AuditUsecase
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo: params.MemberRepo,
		audit:      params.Audit,
		logger:     params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves members visible to the request: the resolved tenant's
// records, or every record in global mode.
func (srv *memberService) List(ctx context.Context) ([]*entity.Member, error) {
	members, err := srv.memberRepo.List(ctx, deliverycontext.GetTenantID(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	return members, nil
}

// Get retrieves a single member by ID, restricted to the request tenant.
func (srv *memberService) Get(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "member not found")
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	if err := srv.requireSameTenant(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// requireSameTenant rejects any action on a record belonging to another
// congregation. A nil request tenant (global mode) is unrestricted.
func (srv *memberService) requireSameTenant(ctx context.Context, member *entity.Member) error {
	tenantID := deliverycontext.GetTenantID(ctx)
	if tenantID == nil {
		return nil
	}
	if member.CongregationID == nil || *member.CongregationID != *tenantID {
		return errors.Wrap(domainerrors.ErrForbidden, "member belongs to another congregation")
	}

	return nil
}

// Create persists a new member stamped with the request tenant and the
// acting account, then records the mutation in the audit trail.
func (srv *memberService) Create(ctx context.Context, input *usecase.MemberInput) (*entity.Member, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "member name is required")
	}

	member := &entity.Member{
		Name:           input.Name,
		CPF:            input.CPF,
		BirthDate:      input.BirthDate,
		Phone:          input.Phone,
		Email:          input.Email,
		CongregationID: deliverycontext.GetTenantID(ctx),
		FamilyID:       input.FamilyID,
	}
	if identity := deliverycontext.GetIdentity(ctx); identity != nil {
		accountID := identity.AccountID
		member.CreatedBy = &accountID
	}

	if err := srv.memberRepo.Create(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to create member")
	}

	srv.log(ctx).Info("Member created", slog.Any("memberID", member.ID))
	srv.recordMutation(ctx, entity.AuditActionCreate, member.ID, nil, memberSnapshot(member))

	return member, nil
}

// Update modifies an existing member and audits the before/after snapshots.
func (srv *memberService) Update(ctx context.Context, id uuid.UUID, input *usecase.MemberInput) (*entity.Member, error) {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "member not found")
		}

		return nil, errors.Wrap(err, "failed to find member for update")
	}

	if err := srv.requireSameTenant(ctx, member); err != nil {
		return nil, err
	}

	oldValues := memberSnapshot(member)

	if input.Name != "" {
		member.Name = input.Name
	}
	member.CPF = input.CPF
	member.BirthDate = input.BirthDate
	member.Phone = input.Phone
	member.Email = input.Email
	member.FamilyID = input.FamilyID

	if err := srv.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "member not found")
		}

		return nil, errors.Wrap(err, "failed to update member")
	}

	srv.log(ctx).Info("Member updated", slog.Any("memberID", member.ID))
	srv.recordMutation(ctx, entity.AuditActionUpdate, member.ID, oldValues, memberSnapshot(member))

	return member, nil
}

// Delete removes a member, auditing the final state of the record.
func (srv *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "member not found")
		}

		return errors.Wrap(err, "failed to find member for delete")
	}

	if err := srv.requireSameTenant(ctx, member); err != nil {
		return err
	}

	if err := srv.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "member not found")
		}

		return errors.Wrap(err, "failed to delete member")
	}

	srv.log(ctx).Info("Member deleted", slog.Any("memberID", id))
	srv.recordMutation(ctx, entity.AuditActionDelete, id, memberSnapshot(member), nil)

	return nil
}

func (srv *memberService) recordMutation(ctx context.Context, action string, memberID uuid.UUID, oldValues, newValues any) {
	event := &usecase.AuditEvent{
		CongregationID: deliverycontext.GetTenantID(ctx),
		Action:         action,
		ResourceType:   "members",
		ResourceID:     &memberID,
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

func memberSnapshot(member *entity.Member) map[string]any {
	return map[string]any{
		"nome":            member.Name,
		"cpf":             member.CPF,
		"data_nascimento": member.BirthDate,
		"telefone":        member.Phone,
		"email":           member.Email,
		"congregacao_id":  member.CongregationID,
		"familia_id":      member.FamilyID,
	}
}
