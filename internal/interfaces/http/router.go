package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	subusecases "github.com/subwatch-inc/subwatch/internal/application/subscription/usecases"
	userusecases "github.com/subwatch-inc/subwatch/internal/application/user/usecases"
	workflowusecases "github.com/subwatch-inc/subwatch/internal/application/workflow/usecases"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/auth"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/email"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/ratelimit"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/repository"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/workflow"
	"github.com/subwatch-inc/subwatch/internal/interfaces/http/handlers"
	"github.com/subwatch-inc/subwatch/internal/interfaces/http/middleware"
	"github.com/subwatch-inc/subwatch/internal/shared/config"
	"github.com/subwatch-inc/subwatch/internal/shared/constants"
	"github.com/subwatch-inc/subwatch/internal/shared/db"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
	"github.com/subwatch-inc/subwatch/internal/shared/utils"

	_ "github.com/subwatch-inc/subwatch/docs"
	"github.com/subwatch-inc/subwatch/internal/interfaces/http/routes"
)

// Config carries everything the router needs to assemble the HTTP surface.
type Config struct {
	Server    *config.ServerConfig
	Auth      *config.AuthConfig
	Email     *config.EmailConfig
	Workflow  *config.WorkflowConfig
	RateLimit *config.RateLimitConfig
}

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// NewRouter wires repositories, use cases, handlers and middleware into
// a ready-to-serve engine.
func NewRouter(cfg *Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	mailer := email.NewSMTPEmailService(cfg.Email)
	workflowClient := workflow.NewClient(cfg.Workflow, log)

	// Repositories
	userRepo := repository.NewUserRepository(gdb, log)
	subscriptionRepo := repository.NewSubscriptionRepository(gdb, log)
	txMgr := db.NewTransactionManager(gdb)

	// Use cases
	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, jwtService, txMgr, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)

	createSubUC := subusecases.NewCreateSubscriptionUseCase(subscriptionRepo, workflowClient, log)
	getSubUC := subusecases.NewGetSubscriptionUseCase(subscriptionRepo, log)
	updateSubUC := subusecases.NewUpdateSubscriptionUseCase(subscriptionRepo, log)
	cancelSubUC := subusecases.NewCancelSubscriptionUseCase(subscriptionRepo, log)
	deleteSubUC := subusecases.NewDeleteSubscriptionUseCase(subscriptionRepo, log)
	listSubsUC := subusecases.NewListSubscriptionsUseCase(subscriptionRepo, log)
	listUserSubsUC := subusecases.NewListUserSubscriptionsUseCase(subscriptionRepo, log)
	upcomingUC := subusecases.NewUpcomingRenewalsUseCase(subscriptionRepo, log)

	processReminderUC := workflowusecases.NewProcessReminderUseCase(subscriptionRepo, userRepo, mailer, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	userHandler := handlers.NewUserHandler(getUserUC, listUsersUC, updateUserUC, deleteUserUC, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(
		createSubUC, getSubUC, updateSubUC, cancelSubUC, deleteSubUC,
		listSubsUC, listUserSubsUC, upcomingUC, log,
	)
	workflowHandler := handlers.NewWorkflowHandler(processReminderUC, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimitMW gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.RateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
		}, log)
	}

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := engine.Group("/api/v1")
	v1.Use(rateLimitMW)

	routes.SetupAuthRoutes(v1, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupUserRoutes(v1, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupSubscriptionRoutes(v1, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupWorkflowRoutes(v1, &routes.WorkflowRouteConfig{
		WorkflowHandler: workflowHandler,
	})

	return &Router{engine: engine, logger: log}
}

// Engine exposes the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address
func (r *Router) Run(addr string) error {
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
