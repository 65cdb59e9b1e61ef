package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	mockRepo "ecclesia/internal/mocks/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newImportServiceForTest(t *testing.T) (usecase.ImportUsecase, *mockRepo.MockMemberRepository, *mockRepo.MockAuditLogRepository) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	audit := NewAuditService(AuditServiceParams{AuditRepo: auditRepo, Logger: logger})
	svc := NewImportService(ImportServiceParams{
		MemberRepo: memberRepo,
		Audit:      audit,
		Logger:     logger,
	})

	return svc, memberRepo, auditRepo
}

func TestImportService_ImportMembers(t *testing.T) {
	svc, memberRepo, auditRepo := newImportServiceForTest(t)

	tenantID := uuid.New()
	accountID := uuid.New()
	ctx := deliverycontext.WithTenantID(context.Background(), tenantID)
	ctx = deliverycontext.WithIdentity(ctx, &deliverycontext.Identity{AccountID: accountID})

	csvFile := strings.Join([]string{
		"nome,email,cpf,telefone,data_nascimento",
		"Ana Souza,ana@example.com,123.456.789-01,11999990000,1990-05-10",
		",missing@example.com,,,",                // nome missing
		"Bruno Lima,not-an-email,,,",             // bad email
		"Carla Dias,,123,,",                      // cpf too short
		"Davi Rocha,,,,(not-a-date)",             // bad date
		"Elisa Prado,elisa@example.com,,,",       // valid, minimal
	}, "\n")

	var created []*entity.Member
	memberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).
		RunAndReturn(func(_ context.Context, member *entity.Member) error {
			created = append(created, member)
			return nil
		}).
		Times(2)

	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, record *entity.AuditLog) error {
			assert.Equal(t, entity.AuditActionImport, record.Action)
			assert.Equal(t, "members", record.ResourceType)
			assert.Equal(t, &tenantID, record.CongregationID)
			assert.Equal(t, &accountID, record.AccountID)
			return nil
		})

	output, err := svc.ImportMembers(ctx, strings.NewReader(csvFile))

	require.NoError(t, err)
	assert.Equal(t, 2, output.Created)
	require.Len(t, output.Skipped, 4)
	assert.Equal(t, 3, output.Skipped[0].Line)
	assert.Equal(t, "nome is required", output.Skipped[0].Reason)
	assert.Equal(t, "invalid email", output.Skipped[1].Reason)
	assert.Equal(t, "invalid cpf", output.Skipped[2].Reason)
	assert.Contains(t, output.Skipped[3].Reason, "data_nascimento")

	require.Len(t, created, 2)
	assert.Equal(t, "Ana Souza", created[0].Name)
	assert.Equal(t, "12345678901", created[0].CPF) // normalized to digits
	require.NotNil(t, created[0].BirthDate)
	assert.Equal(t, &tenantID, created[0].CongregationID)
	assert.Equal(t, &accountID, created[0].CreatedBy)
	assert.Equal(t, "Elisa Prado", created[1].Name)
}

func TestImportService_ImportMembers_StoreRejectionSkipsRow(t *testing.T) {
	svc, memberRepo, auditRepo := newImportServiceForTest(t)

	ctx := context.Background()
	csvFile := "nome\nAna Souza\n"

	memberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).Return(assert.AnError)
	auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	output, err := svc.ImportMembers(ctx, strings.NewReader(csvFile))

	require.NoError(t, err)
	assert.Equal(t, 0, output.Created)
	require.Len(t, output.Skipped, 1)
	assert.Equal(t, "could not be saved", output.Skipped[0].Reason)
}

func TestImportService_ImportMembers_MissingHeader(t *testing.T) {
	svc, _, _ := newImportServiceForTest(t)

	_, err := svc.ImportMembers(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ImportMembers(context.Background(), strings.NewReader("email,cpf\nana@example.com,123\n"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
