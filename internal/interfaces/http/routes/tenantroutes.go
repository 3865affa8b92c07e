package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// TenantRouteConfig holds dependencies for tenant self-service routes.
type TenantRouteConfig struct {
	TenantHandler       *handlers.TenantHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	APIKeyHandler       *handlers.APIKeyHandler
	AuthMiddleware      *middleware.AuthMiddleware
	TenantGuard         *middleware.TenantGuard
}

// SetupTenantRoutes configures the tenant's own profile, subscription view
// and API key management. Key and profile mutations are owner only; staff
// can read.
func SetupTenantRoutes(engine *gin.Engine, cfg *TenantRouteConfig) {
	tenant := engine.Group("/tenant")
	tenant.Use(cfg.AuthMiddleware.RequireAuth())
	tenant.Use(middleware.RequireRoles(authorization.RoleTenant))
	tenant.Use(cfg.TenantGuard.RequireTenant())
	{
		tenant.GET("/profile", cfg.TenantHandler.GetProfile)
		tenant.PUT("/profile",
			middleware.RequireRoles(authorization.RoleOwner),
			cfg.TenantHandler.UpdateProfile)

		tenant.GET("/subscription", cfg.SubscriptionHandler.CurrentPlan)
		tenant.POST("/subscription/upgrade",
			middleware.RequireRoles(authorization.RoleOwner),
			cfg.SubscriptionHandler.Upgrade)

		keys := tenant.Group("/api-keys")
		keys.Use(middleware.RequireRoles(authorization.RoleOwner))
		{
			keys.POST("", cfg.APIKeyHandler.Generate)
			keys.GET("", cfg.APIKeyHandler.List)
			keys.GET("/usage", cfg.APIKeyHandler.Usage)
			keys.DELETE("/:id", cfg.APIKeyHandler.Revoke)
		}
	}
}
