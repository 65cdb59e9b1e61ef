package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecclesia/internal/domain/entity"
	"ecclesia/internal/domain/repository"
	mockRepo "ecclesia/internal/mocks/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuditServiceForTest(t *testing.T) (usecase.AuditUsecase, *mockRepo.MockAuditLogRepository) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    logger,
	})

	return svc, auditRepo
}

func TestAuditService_Record(t *testing.T) {
	svc, auditRepo := newAuditServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	resourceID := uuid.New()

	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, record *entity.AuditLog) error {
			assert.Equal(t, &accountID, record.AccountID)
			assert.Equal(t, entity.AuditActionCreate, record.Action)
			assert.Equal(t, "members", record.ResourceType)
			assert.Equal(t, &resourceID, record.ResourceID)
			assert.True(t, record.Success)
			return nil
		})

	svc.Record(ctx, &usecase.AuditEvent{
		AccountID:    &accountID,
		Action:       entity.AuditActionCreate,
		ResourceType: "members",
		ResourceID:   &resourceID,
		NewValues:    map[string]any{"nome": "Ana"},
		Success:      true,
	})
}

func TestAuditService_RecordSwallowsStorageErrors(t *testing.T) {
	svc, auditRepo := newAuditServiceForTest(t)

	ctx := context.Background()
	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(assert.AnError)

	// Record must not panic or surface the failure to the audited operation.
	svc.Record(ctx, &usecase.AuditEvent{
		Action:       entity.AuditActionDelete,
		ResourceType: "families",
		Success:      true,
	})
}

func TestAuditService_List(t *testing.T) {
	svc, auditRepo := newAuditServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	logs := []*entity.AuditLog{{ID: uuid.New(), Action: entity.AuditActionUpdate, ResourceType: "members"}}

	auditRepo.EXPECT().
		List(ctx, repository.AuditLogFilter{ResourceType: "members", AccountID: &accountID}).
		Return(logs, nil)

	got, err := svc.List(ctx, &usecase.AuditListInput{ResourceType: "members", AccountID: &accountID})

	require.NoError(t, err)
	assert.Equal(t, logs, got)
}
