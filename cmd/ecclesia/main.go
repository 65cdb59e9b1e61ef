package main

import (
	"context"
	"log/slog"
	"os"

	"ecclesia/config"
	"ecclesia/internal/delivery"
	"ecclesia/internal/delivery/http"
	"ecclesia/internal/delivery/http/middleware"
	"ecclesia/internal/delivery/http/router/handler"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/auth"
	logs "ecclesia/internal/infra/log"
	"ecclesia/internal/infra/metrics"
	"ecclesia/internal/infra/persistence/postgres"
	"ecclesia/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			metrics.Init,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewSessionRepository,
			postgres.NewRoleRepository,
			postgres.NewMemberRepository,
			postgres.NewCongregationRepository,
			postgres.NewFamilyRepository,
			postgres.NewAuditLogRepository,
			postgres.NewTransactionManager,
			newScopeFinders,
		),
	)
}

// newScopeFinders registers every repository the permission evaluator can ask
// about a record's tenant and owner, keyed by the resource name used in grants.
func newScopeFinders(
	members repository.MemberRepository,
	congregations repository.CongregationRepository,
	families repository.FamilyRepository,
) impl.ScopeFinders {
	return impl.ScopeFinders{
		"members":       members,
		"congregations": congregations,
		"families":      families,
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAuthorizationService,
			impl.NewMemberService,
			impl.NewCongregationService,
			impl.NewFamilyService,
			impl.NewRoleService,
			impl.NewAuditService,
			impl.NewImportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewAuthorizeMiddleware,
			middleware.NewTenantMiddleware,
			middleware.NewTestHarnessMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMemberHandler,
			handler.NewCongregationHandler,
			handler.NewFamilyHandler,
			handler.NewRoleHandler,
			handler.NewAuditHandler,
			handler.NewImportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
