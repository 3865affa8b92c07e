package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for the superadmin console.
type AdminRouteConfig struct {
	TenantHandler       *handlers.TenantHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupAdminRoutes configures cross-tenant administration. SUPERADMIN is
// required explicitly; no tenant role ever expands into it.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	admin.Use(middleware.RequireRoles(authorization.RoleSuperadmin))
	{
		admin.GET("/tenants", cfg.TenantHandler.List)
		admin.POST("/tenants/:id/suspend", cfg.TenantHandler.Suspend)
		admin.POST("/tenants/:id/reactivate", cfg.TenantHandler.Reactivate)
		admin.POST("/tenants/:id/subscription", cfg.SubscriptionHandler.AssignPlan)
	}
}
