package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// CustomerRouteConfig holds dependencies for customer routes.
type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
	TenantGuard     *middleware.TenantGuard
}

// SetupCustomerRoutes configures customer management.
func SetupCustomerRoutes(engine *gin.Engine, cfg *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	customers.Use(cfg.AuthMiddleware.RequireAuth())
	customers.Use(middleware.RequireRoles(authorization.RoleTenant))
	customers.Use(cfg.TenantGuard.RequireTenant())
	{
		customers.POST("", cfg.CustomerHandler.Create)
		customers.GET("", cfg.CustomerHandler.List)
		customers.PUT("/:id", cfg.CustomerHandler.Update)
		customers.DELETE("/:id", cfg.CustomerHandler.Delete)
	}
}
