package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	importEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	importDigitPattern = regexp.MustCompile(`\D`)
)

const importBirthDateLayout = "2006-01-02"

// importService implements the ImportUsecase interface.
type importService struct {
	memberRepo repository.MemberRepository
	audit      usecase.AuditUsecase
	logger     *slog.Logger
}

// ImportServiceParams holds dependencies for importService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Audit      usecase.AuditUsecase
	Logger     *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		memberRepo: params.MemberRepo,
		audit:      params.Audit,
		logger:     params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportMembers ingests a comma-separated file with a header row. Every
// valid row becomes a member of the request tenant; invalid rows are
// reported per line and never abort the batch. One audit record summarizes
// the whole import.
func (srv *importService) ImportMembers(ctx context.Context, file io.Reader) (*usecase.ImportMembersOutput, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "csv file is empty or has no header row")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["nome"]; !ok {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "csv header must contain a nome column")
	}

	output := &usecase.ImportMembersOutput{Skipped: []usecase.ImportSkip{}}
	tenantID := deliverycontext.GetTenantID(ctx)
	identity := deliverycontext.GetIdentity(ctx)

	// Header is line 1, so data starts at line 2.
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			output.Skipped = append(output.Skipped, usecase.ImportSkip{Line: line, Reason: "malformed csv row"})

			continue
		}

		member, reason := buildImportedMember(columns, row)
		if reason != "" {
			output.Skipped = append(output.Skipped, usecase.ImportSkip{Line: line, Reason: reason})

			continue
		}

		member.CongregationID = tenantID
		if identity != nil {
			accountID := identity.AccountID
			member.CreatedBy = &accountID
		}

		if err := srv.memberRepo.Create(ctx, member); err != nil {
			srv.log(ctx).Warn("Import row rejected by store", slog.Int("line", line), slog.Any("error", err))
			output.Skipped = append(output.Skipped, usecase.ImportSkip{Line: line, Reason: "could not be saved"})

			continue
		}

		output.Created++
	}

	srv.log(ctx).Info("Member import finished",
		slog.Int("created", output.Created),
		slog.Int("skipped", len(output.Skipped)))

	event := &usecase.AuditEvent{
		CongregationID: tenantID,
		Action:         entity.AuditActionImport,
		ResourceType:   "members",
		NewValues: map[string]any{
			"created": output.Created,
			"skipped": len(output.Skipped),
		},
		Success: true,
	}
	if identity != nil {
		accountID := identity.AccountID
		event.AccountID = &accountID
	}
	srv.audit.Record(ctx, event)

	return output, nil
}

// buildImportedMember validates one CSV row and maps it to a member entity.
// The returned reason is non-empty when the row must be skipped.
func buildImportedMember(columns map[string]int, row []string) (*entity.Member, string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	name := field("nome")
	if name == "" {
		return nil, "nome is required"
	}

	email := field("email")
	if email != "" && !importEmailPattern.MatchString(email) {
		return nil, "invalid email"
	}

	cpf := field("cpf")
	if cpf != "" {
		digits := importDigitPattern.ReplaceAllString(cpf, "")
		if len(digits) != 11 {
			return nil, "invalid cpf"
		}
		cpf = digits
	}

	member := &entity.Member{
		Name:  name,
		CPF:   cpf,
		Phone: field("telefone"),
		Email: email,
	}

	if raw := field("data_nascimento"); raw != "" {
		birthDate, err := time.Parse(importBirthDateLayout, raw)
		if err != nil {
			return nil, fmt.Sprintf("invalid data_nascimento, expected %s", importBirthDateLayout)
		}
		member.BirthDate = &birthDate
	}

	return member, ""
}
