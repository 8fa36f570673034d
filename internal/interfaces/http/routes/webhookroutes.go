package routes

import (
	"github.com/gin-gonic/gin"

	"fanimal/internal/interfaces/http/handlers"
	"fanimal/internal/interfaces/http/middleware"
)

// WebhookRouteConfig holds dependencies for webhook routes.
type WebhookRouteConfig struct {
	WebhookHandler *handlers.WebhookHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupWebhookRoutes configures inbound webhook routes. These are
// authenticated by provider signature, not by user tokens.
func SetupWebhookRoutes(engine *gin.Engine, cfg *WebhookRouteConfig) {
	webhooks := engine.Group("/webhooks")
	{
		webhooks.POST("/stripe", cfg.RateLimiter.Limit(), cfg.WebhookHandler.HandleStripeWebhook)
	}
}
