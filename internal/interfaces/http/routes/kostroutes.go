package routes

import (
	"github.com/gin-gonic/gin"

	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// KostRouteConfig holds dependencies for kost, room type and room routes.
type KostRouteConfig struct {
	KostHandler     *handlers.KostHandler
	RoomTypeHandler *handlers.RoomTypeHandler
	RoomHandler     *handlers.RoomHandler
	AuthMiddleware  *middleware.AuthMiddleware
	TenantGuard     *middleware.TenantGuard
	PlanGuard       *middleware.PlanGuard
}

// SetupKostRoutes configures property management. Creates that consume a
// plan quota carry the limit guard; the check runs before the handler so a
// denied request writes nothing.
func SetupKostRoutes(engine *gin.Engine, cfg *KostRouteConfig) {
	authed := engine.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	authed.Use(middleware.RequireRoles(authorization.RoleTenant))
	authed.Use(cfg.TenantGuard.RequireTenant())

	kosts := authed.Group("/kosts")
	{
		kosts.POST("", cfg.PlanGuard.CheckLimit(vo.LimitKosts), cfg.KostHandler.Create)
		kosts.GET("", cfg.KostHandler.List)
		kosts.GET("/:id", cfg.KostHandler.Get)
		kosts.PUT("/:id", cfg.KostHandler.Update)
		kosts.DELETE("/:id", cfg.KostHandler.Delete)
	}

	roomTypes := authed.Group("/room-types")
	{
		roomTypes.POST("", cfg.RoomTypeHandler.Create)
		roomTypes.GET("", cfg.RoomTypeHandler.List)
		roomTypes.PUT("/:id", cfg.RoomTypeHandler.Update)
		roomTypes.DELETE("/:id", cfg.RoomTypeHandler.Delete)
	}

	rooms := authed.Group("/rooms")
	{
		rooms.POST("", cfg.PlanGuard.CheckLimit(vo.LimitRooms), cfg.RoomHandler.Create)
		rooms.GET("", cfg.RoomHandler.List)
		rooms.PUT("/:id", cfg.RoomHandler.Update)
		rooms.PATCH("/:id/maintenance", cfg.RoomHandler.SetMaintenance)
		rooms.DELETE("/:id", cfg.RoomHandler.Delete)
	}
}
