package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	mockRepo "ecclesia/internal/mocks/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemberServiceForTest(t *testing.T) (usecase.MemberUsecase, *mockRepo.MockMemberRepository, *mockRepo.MockAuditLogRepository) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	audit := NewAuditService(AuditServiceParams{AuditRepo: auditRepo, Logger: logger})
	svc := NewMemberService(MemberServiceParams{
		MemberRepo: memberRepo,
		Audit:      audit,
		Logger:     logger,
	})

	return svc, memberRepo, auditRepo
}

func TestMemberService_List_ScopedToTenant(t *testing.T) {
	svc, memberRepo, _ := newMemberServiceForTest(t)

	tenantID := uuid.New()
	ctx := deliverycontext.WithTenantID(context.Background(), tenantID)

	members := []*entity.Member{{ID: uuid.New(), Name: "Ana Souza"}}
	memberRepo.EXPECT().List(ctx, &tenantID).Return(members, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, members, got)
}

func TestMemberService_List_GlobalModeSeesEverything(t *testing.T) {
	svc, memberRepo, _ := newMemberServiceForTest(t)

	ctx := context.Background()
	memberRepo.EXPECT().List(ctx, (*uuid.UUID)(nil)).Return([]*entity.Member{}, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemberService_Create_StampsTenantAndActor(t *testing.T) {
	svc, memberRepo, auditRepo := newMemberServiceForTest(t)

	tenantID := uuid.New()
	accountID := uuid.New()
	ctx := deliverycontext.WithTenantID(context.Background(), tenantID)
	ctx = deliverycontext.WithIdentity(ctx, &deliverycontext.Identity{AccountID: accountID})

	var created *entity.Member
	memberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).
		RunAndReturn(func(_ context.Context, member *entity.Member) error {
			member.ID = uuid.New()
			created = member

			return nil
		})
	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, log *entity.AuditLog) error {
			assert.Equal(t, entity.AuditActionCreate, log.Action)
			assert.Equal(t, "members", log.ResourceType)

			return nil
		})

	got, err := svc.Create(ctx, &usecase.MemberInput{Name: "Ana Souza", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, got)
	require.NotNil(t, got.CongregationID)
	assert.Equal(t, tenantID, *got.CongregationID)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, accountID, *got.CreatedBy)
}

func TestMemberService_Create_NameIsRequired(t *testing.T) {
	svc, _, _ := newMemberServiceForTest(t)

	_, err := svc.Create(context.Background(), &usecase.MemberInput{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMemberService_Update_AuditsBeforeAndAfter(t *testing.T) {
	svc, memberRepo, auditRepo := newMemberServiceForTest(t)

	ctx := context.Background()
	memberID := uuid.New()
	stored := &entity.Member{ID: memberID, Name: "Ana Souza", Phone: "11999990000"}

	memberRepo.EXPECT().FindByID(ctx, memberID).Return(stored, nil)
	memberRepo.EXPECT().Update(ctx, stored).Return(nil)
	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, log *entity.AuditLog) error {
			assert.Equal(t, entity.AuditActionUpdate, log.Action)
			oldValues, ok := log.OldValues.(map[string]any)
			require.True(t, ok)
			newValues, ok := log.NewValues.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Ana Souza", oldValues["nome"])
			assert.Equal(t, "Ana Prado", newValues["nome"])

			return nil
		})

	got, err := svc.Update(ctx, memberID, &usecase.MemberInput{Name: "Ana Prado"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Prado", got.Name)
}

func TestMemberService_ForeignTenantRecordIsUntouchable(t *testing.T) {
	recordTenant := uuid.New()
	otherTenant := uuid.New()

	t.Run("update", func(t *testing.T) {
		svc, memberRepo, _ := newMemberServiceForTest(t)

		ctx := deliverycontext.WithTenantID(context.Background(), otherTenant)
		memberID := uuid.New()
		memberRepo.EXPECT().FindByID(ctx, memberID).
			Return(&entity.Member{ID: memberID, Name: "Ana Souza", CongregationID: &recordTenant}, nil)

		_, err := svc.Update(ctx, memberID, &usecase.MemberInput{Name: "Ana Prado"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("delete", func(t *testing.T) {
		svc, memberRepo, _ := newMemberServiceForTest(t)

		ctx := deliverycontext.WithTenantID(context.Background(), otherTenant)
		memberID := uuid.New()
		memberRepo.EXPECT().FindByID(ctx, memberID).
			Return(&entity.Member{ID: memberID, Name: "Ana Souza", CongregationID: &recordTenant}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, memberID), domainerrors.ErrForbidden)
	})

	t.Run("get", func(t *testing.T) {
		svc, memberRepo, _ := newMemberServiceForTest(t)

		ctx := deliverycontext.WithTenantID(context.Background(), otherTenant)
		memberID := uuid.New()
		memberRepo.EXPECT().FindByID(ctx, memberID).
			Return(&entity.Member{ID: memberID, Name: "Ana Souza", CongregationID: &recordTenant}, nil)

		_, err := svc.Get(ctx, memberID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	// A record with no congregation is equally off limits from a tenant context.
	t.Run("record without tenant", func(t *testing.T) {
		svc, memberRepo, _ := newMemberServiceForTest(t)

		ctx := deliverycontext.WithTenantID(context.Background(), otherTenant)
		memberID := uuid.New()
		memberRepo.EXPECT().FindByID(ctx, memberID).
			Return(&entity.Member{ID: memberID, Name: "Ana Souza"}, nil)

		_, err := svc.Update(ctx, memberID, &usecase.MemberInput{Name: "Ana Prado"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	// Global mode (no tenant header) keeps full access.
	t.Run("global mode", func(t *testing.T) {
		svc, memberRepo, auditRepo := newMemberServiceForTest(t)

		ctx := context.Background()
		memberID := uuid.New()
		stored := &entity.Member{ID: memberID, Name: "Ana Souza", CongregationID: &recordTenant}
		memberRepo.EXPECT().FindByID(ctx, memberID).Return(stored, nil)
		memberRepo.EXPECT().Update(ctx, stored).Return(nil)
		auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

		_, err := svc.Update(ctx, memberID, &usecase.MemberInput{Name: "Ana Prado"})
		assert.NoError(t, err)
	})
}

func TestMemberService_Update_UnknownMemberIsNotFound(t *testing.T) {
	svc, memberRepo, _ := newMemberServiceForTest(t)

	ctx := context.Background()
	memberID := uuid.New()
	memberRepo.EXPECT().FindByID(ctx, memberID).Return(nil, repository.ErrMemberNotFound)

	_, err := svc.Update(ctx, memberID, &usecase.MemberInput{Name: "Ana Prado"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberService_Delete_AuditsFinalState(t *testing.T) {
	svc, memberRepo, auditRepo := newMemberServiceForTest(t)

	ctx := context.Background()
	memberID := uuid.New()
	stored := &entity.Member{ID: memberID, Name: "Ana Souza"}

	memberRepo.EXPECT().FindByID(ctx, memberID).Return(stored, nil)
	memberRepo.EXPECT().Delete(ctx, memberID).Return(nil)
	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, log *entity.AuditLog) error {
			assert.Equal(t, entity.AuditActionDelete, log.Action)
			oldValues, ok := log.OldValues.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Ana Souza", oldValues["nome"])
			assert.Nil(t, log.NewValues)

			return nil
		})

	require.NoError(t, svc.Delete(ctx, memberID))
}

func TestMemberService_Delete_UnknownMemberIsNotFound(t *testing.T) {
	svc, memberRepo, _ := newMemberServiceForTest(t)

	ctx := context.Background()
	memberID := uuid.New()
	memberRepo.EXPECT().FindByID(ctx, memberID).Return(nil, repository.ErrMemberNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, memberID), domainerrors.ErrNotFound)
}
