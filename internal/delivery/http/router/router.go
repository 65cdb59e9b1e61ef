// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ecclesia/internal/delivery/http/middleware"
	"ecclesia/internal/delivery/http/router/handler"
	"ecclesia/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	MemberHandler       *handler.MemberHandler
	CongregationHandler *handler.CongregationHandler
	FamilyHandler       *handler.FamilyHandler
	RoleHandler         *handler.RoleHandler
	AuditHandler        *handler.AuditHandler
	ImportHandler       *handler.ImportHandler

	AuthMiddleware        *middleware.AuthMiddleware
	AuthorizeMiddleware   *middleware.AuthorizeMiddleware
	TenantMiddleware      *middleware.TenantMiddleware
	TestHarnessMiddleware *middleware.TestHarnessMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	memberHandler       *handler.MemberHandler
	congregationHandler *handler.CongregationHandler
	familyHandler       *handler.FamilyHandler
	roleHandler         *handler.RoleHandler
	auditHandler        *handler.AuditHandler
	importHandler       *handler.ImportHandler

	authMiddleware        *middleware.AuthMiddleware
	authorizeMiddleware   *middleware.AuthorizeMiddleware
	tenantMiddleware      *middleware.TenantMiddleware
	testHarnessMiddleware *middleware.TestHarnessMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		memberHandler:         params.MemberHandler,
		congregationHandler:   params.CongregationHandler,
		familyHandler:         params.FamilyHandler,
		roleHandler:           params.RoleHandler,
		auditHandler:          params.AuditHandler,
		importHandler:         params.ImportHandler,
		authMiddleware:        params.AuthMiddleware,
		authorizeMiddleware:   params.AuthorizeMiddleware,
		tenantMiddleware:      params.TenantMiddleware,
		testHarnessMiddleware: params.TestHarnessMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Public auth routes. Tenant resolution still applies so registrations
	// and logins can be attributed to a congregation when the header is set.
	authGroup := e.Group("/auth", r.tenantMiddleware.Resolve)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Everything below requires a verified identity. The test harness runs
	// before token verification so it can inject an identity in test builds.
	guarded := []echo.MiddlewareFunc{
		r.tenantMiddleware.Resolve,
		r.testHarnessMiddleware.Handle,
		r.authMiddleware.Authenticate,
	}

	memberGroup := e.Group("/members", guarded...)
	{
		memberGroup.GET("", r.memberHandler.List, r.authorizeMiddleware.Require("members", "read"))
		memberGroup.GET("/:id", r.memberHandler.Get, r.authorizeMiddleware.Require("members", "read"))
		memberGroup.POST("", r.memberHandler.Create, r.authorizeMiddleware.Require("members", "create"))
		memberGroup.PUT("/:id", r.memberHandler.Update, r.authorizeMiddleware.Require("members", "update"))
		memberGroup.DELETE("/:id", r.memberHandler.Delete, r.authorizeMiddleware.Require("members", "delete"))
	}

	congregationGroup := e.Group("/congregations", guarded...)
	{
		congregationGroup.GET("", r.congregationHandler.List, r.authorizeMiddleware.Require("congregations", "read"))
		congregationGroup.GET("/:id", r.congregationHandler.Get, r.authorizeMiddleware.Require("congregations", "read"))
		congregationGroup.POST("", r.congregationHandler.Create, r.authorizeMiddleware.Require("congregations", "create"))
		congregationGroup.PUT("/:id", r.congregationHandler.Update, r.authorizeMiddleware.Require("congregations", "update"))
		congregationGroup.DELETE("/:id", r.congregationHandler.Delete, r.authorizeMiddleware.Require("congregations", "delete"))
	}

	familyGroup := e.Group("/families", guarded...)
	{
		familyGroup.GET("", r.familyHandler.List, r.authorizeMiddleware.Require("families", "read"))
		familyGroup.GET("/:id", r.familyHandler.Get, r.authorizeMiddleware.Require("families", "read"))
		familyGroup.POST("", r.familyHandler.Create, r.authorizeMiddleware.Require("families", "create"))
		familyGroup.PUT("/:id", r.familyHandler.Update, r.authorizeMiddleware.Require("families", "update"))
		familyGroup.DELETE("/:id", r.familyHandler.Delete, r.authorizeMiddleware.Require("families", "delete"))
	}

	roleGroup := e.Group("/roles", guarded...)
	{
		roleGroup.GET("", r.roleHandler.List, r.authorizeMiddleware.Require("roles", "read"))
		roleGroup.POST("", r.roleHandler.Create, r.authorizeMiddleware.Require("roles", "create"))
	}

	userGroup := e.Group("/users", guarded...)
	{
		userGroup.POST("/:id/roles", r.roleHandler.Assign, r.authorizeMiddleware.Require("roles", "update"))
		userGroup.DELETE("/:id/roles", r.roleHandler.Revoke, r.authorizeMiddleware.Require("roles", "update"))
	}

	auditGroup := e.Group("/audit", guarded...)
	{
		auditGroup.GET("/audit-logs", r.auditHandler.List, r.authorizeMiddleware.Require("audit_logs", "read"))
	}

	importGroup := e.Group("/import", guarded...)
	{
		importGroup.POST("/members", r.importHandler.Members, r.authorizeMiddleware.Require("members", "create"))
	}
}
