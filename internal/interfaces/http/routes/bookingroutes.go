package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/authorization"
)

// BookingRouteConfig holds dependencies for booking and invoice routes.
type BookingRouteConfig struct {
	BookingHandler *handlers.BookingHandler
	AuthMiddleware *middleware.AuthMiddleware
	TenantGuard    *middleware.TenantGuard
}

// SetupBookingRoutes configures bookings and the invoices they generate.
func SetupBookingRoutes(engine *gin.Engine, cfg *BookingRouteConfig) {
	authed := engine.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	authed.Use(middleware.RequireRoles(authorization.RoleTenant))
	authed.Use(cfg.TenantGuard.RequireTenant())

	bookings := authed.Group("/bookings")
	{
		bookings.POST("", cfg.BookingHandler.Create)
		bookings.GET("", cfg.BookingHandler.List)
		bookings.DELETE("/:id", cfg.BookingHandler.Remove)
	}

	invoices := authed.Group("/invoices")
	{
		invoices.GET("", cfg.BookingHandler.ListInvoices)
		invoices.POST("/:id/pay", cfg.BookingHandler.PayInvoice)
	}
}
