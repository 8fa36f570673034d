package routes

import (
	"github.com/gin-gonic/gin"

	"fanimal/internal/interfaces/http/handlers"
	"fanimal/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.POST("", cfg.SubscriptionHandler.Subscribe)
		subscriptions.GET("", cfg.SubscriptionHandler.ListMine)
		subscriptions.DELETE("/:id", cfg.SubscriptionHandler.Unsubscribe)
	}
}
