package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "fanimal/internal/application/auth/usecases"
	shelterusecases "fanimal/internal/application/shelter/usecases"
	subscriptionusecases "fanimal/internal/application/subscription/usecases"
	userusecases "fanimal/internal/application/user/usecases"
	"fanimal/internal/infrastructure/auth"
	"fanimal/internal/infrastructure/billing"
	"fanimal/internal/infrastructure/cache"
	"fanimal/internal/infrastructure/config"
	"fanimal/internal/infrastructure/email"
	"fanimal/internal/infrastructure/repository"
	"fanimal/internal/interfaces/http/handlers"
	"fanimal/internal/interfaces/http/middleware"
	"fanimal/internal/interfaces/http/routes"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	shelterHandler      *handlers.ShelterHandler
	subscriptionHandler *handlers.SubscriptionHandler
	webhookHandler      *handlers.WebhookHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	allowedOrigins      []string
	log                 logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	shelterRepo := repository.NewShelterRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	mailer := email.NewSMTPMailer(cfg.Email, log)
	markdownService := markdown.NewService()
	gateway := billing.NewStripeGateway(cfg.Stripe.APIKey, log)

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, mailer, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)

	createShelterUC := shelterusecases.NewCreateShelterUseCase(shelterRepo, log)
	listSheltersUC := shelterusecases.NewListSheltersUseCase(shelterRepo, log)
	getShelterUC := shelterusecases.NewGetShelterUseCase(shelterRepo, markdownService, log)
	updateShelterUC := shelterusecases.NewUpdateShelterUseCase(shelterRepo, log)
	deleteShelterUC := shelterusecases.NewDeleteShelterUseCase(shelterRepo, log)
	configurePricesUC := shelterusecases.NewConfigurePricesUseCase(shelterRepo, log)

	subscribeUC := subscriptionusecases.NewSubscribeUseCase(subscriptionRepo, userRepo, shelterRepo, gateway, log)
	listSubscriptionsUC := subscriptionusecases.NewListSubscriptionsUseCase(subscriptionRepo, log)
	unsubscribeUC := subscriptionusecases.NewUnsubscribeUseCase(subscriptionRepo, gateway, log)
	applyBillingEventUC := subscriptionusecases.NewApplyBillingEventUseCase(subscriptionRepo, shelterRepo, gateway, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	userHandler := handlers.NewUserHandler(getUserUC, updateProfileUC, log)
	shelterHandler := handlers.NewShelterHandler(
		createShelterUC, listSheltersUC, getShelterUC,
		updateShelterUC, deleteShelterUC, configurePricesUC, log,
	)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscribeUC, listSubscriptionsUC, unsubscribeUC, log)
	// Stripe retries deliveries for up to 3 days; keep markers a bit longer.
	eventCache := cache.NewBillingEventCache(redisClient, 4*24*time.Hour)
	webhookHandler := handlers.NewWebhookHandler(applyBillingEventUC, eventCache, cfg.Stripe.WebhookSecret, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 60, time.Minute)

	return &Router{
		engine:              engine,
		authHandler:         authHandler,
		userHandler:         userHandler,
		shelterHandler:      shelterHandler,
		subscriptionHandler: subscriptionHandler,
		webhookHandler:      webhookHandler,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		log:                 log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupShelterRoutes(r.engine, &routes.ShelterRouteConfig{
		ShelterHandler: r.shelterHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupWebhookRoutes(r.engine, &routes.WebhookRouteConfig{
		WebhookHandler: r.webhookHandler,
		RateLimiter:    r.rateLimiter,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
