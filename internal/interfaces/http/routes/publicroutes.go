package routes

import (
	"github.com/gin-gonic/gin"

	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the unauthenticated surface.
type PublicRouteConfig struct {
	PublicHandler    *handlers.PublicHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
}

// SetupPublicRoutes configures the storefront and the API-key public API.
// The storefront needs no credentials; the v1 API is metered per key
// against the plan's monthly call quota.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	public := engine.Group("/public")
	{
		public.GET("/kosts/:slug", cfg.PublicHandler.Storefront)
		public.GET("/kosts/:slug/rooms", cfg.PublicHandler.StorefrontRooms)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(cfg.APIKeyMiddleware.RequireAPIKey())
	{
		apiV1.GET("/storefront", cfg.PublicHandler.APIStorefront)
	}
}
