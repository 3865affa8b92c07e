package routes

import (
	"github.com/gin-gonic/gin"

	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// StaffRouteConfig holds dependencies for staff management routes.
type StaffRouteConfig struct {
	StaffHandler   *handlers.StaffHandler
	AuthMiddleware *middleware.AuthMiddleware
	TenantGuard    *middleware.TenantGuard
	PlanGuard      *middleware.PlanGuard
}

// SetupStaffRoutes configures staff management. Owner only: staff cannot
// mint or remove other staff accounts.
func SetupStaffRoutes(engine *gin.Engine, cfg *StaffRouteConfig) {
	staff := engine.Group("/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth())
	staff.Use(middleware.RequireRoles(authorization.RoleOwner))
	staff.Use(cfg.TenantGuard.RequireTenant())
	{
		staff.POST("", cfg.PlanGuard.CheckLimit(vo.LimitStaff), cfg.StaffHandler.Create)
		staff.GET("", cfg.StaffHandler.List)
		staff.DELETE("/:id", cfg.StaffHandler.Remove)
	}
}
