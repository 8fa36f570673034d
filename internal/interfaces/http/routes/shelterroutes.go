package routes

import (
	"github.com/gin-gonic/gin"

	"fanimal/internal/interfaces/http/handlers"
	"fanimal/internal/interfaces/http/middleware"
)

// ShelterRouteConfig holds dependencies for shelter routes.
type ShelterRouteConfig struct {
	ShelterHandler *handlers.ShelterHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupShelterRoutes configures shelter routes. Reads are public;
// writes require authentication and ownership is enforced in the
// use cases.
func SetupShelterRoutes(engine *gin.Engine, cfg *ShelterRouteConfig) {
	shelters := engine.Group("/shelters")
	{
		shelters.GET("", cfg.ShelterHandler.List)
		shelters.GET("/:id", cfg.ShelterHandler.Get)

		authed := shelters.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("", cfg.ShelterHandler.Create)
			authed.PUT("/:id", cfg.ShelterHandler.Update)
			authed.DELETE("/:id", cfg.ShelterHandler.Delete)
			authed.PUT("/:id/prices", cfg.ShelterHandler.ConfigurePrices)
		}
	}
}
