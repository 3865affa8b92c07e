package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures plan catalog routes. Reads are public so the
// pricing page works without credentials; writes are superadmin only.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		plans.GET("", cfg.PlanHandler.List)
		plans.GET("/:id", cfg.PlanHandler.Get)

		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		plansAdmin.Use(middleware.RequireRoles(authorization.RoleSuperadmin))
		{
			plansAdmin.POST("", cfg.PlanHandler.Create)
			plansAdmin.PUT("/:id", cfg.PlanHandler.Update)
			plansAdmin.DELETE("/:id", cfg.PlanHandler.Delete)
		}
	}
}
