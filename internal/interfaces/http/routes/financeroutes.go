package routes

import (
	"github.com/gin-gonic/gin"

	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// FinanceRouteConfig holds dependencies for finance and export routes.
type FinanceRouteConfig struct {
	FinanceHandler *handlers.FinanceHandler
	ExportHandler  *handlers.ExportHandler
	AuthMiddleware *middleware.AuthMiddleware
	TenantGuard    *middleware.TenantGuard
	PlanGuard      *middleware.PlanGuard
}

// SetupFinanceRoutes configures the feature-gated modules. The gate runs
// per request, so a downgrade takes effect immediately.
func SetupFinanceRoutes(engine *gin.Engine, cfg *FinanceRouteConfig) {
	finance := engine.Group("/finance")
	finance.Use(cfg.AuthMiddleware.RequireAuth())
	finance.Use(middleware.RequireRoles(authorization.RoleTenant))
	finance.Use(cfg.TenantGuard.RequireTenant())
	finance.Use(cfg.PlanGuard.RequireFeature(vo.FeatureFinance))
	{
		finance.POST("/expenses", cfg.FinanceHandler.CreateExpense)
		finance.GET("/expenses", cfg.FinanceHandler.ListExpenses)
		finance.DELETE("/expenses/:id", cfg.FinanceHandler.DeleteExpense)
		finance.GET("/summary", cfg.FinanceHandler.Summary)
	}

	export := engine.Group("/export")
	export.Use(cfg.AuthMiddleware.RequireAuth())
	export.Use(middleware.RequireRoles(authorization.RoleTenant))
	export.Use(cfg.TenantGuard.RequireTenant())
	export.Use(cfg.PlanGuard.RequireFeature(vo.FeatureExport))
	{
		export.GET("/rooms", cfg.ExportHandler.ExportRooms)
		export.GET("/invoices", cfg.ExportHandler.ExportInvoices)
	}
}
