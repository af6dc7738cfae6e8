package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	alertUsecases "slidebridge/internal/application/alert/usecases"
	mappingUsecases "slidebridge/internal/application/mapping/usecases"
	ticketingUsecases "slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/config"
	"slidebridge/internal/infrastructure/connectwise"
	"slidebridge/internal/infrastructure/email"
	"slidebridge/internal/infrastructure/repository"
	"slidebridge/internal/infrastructure/slide"
	"slidebridge/internal/interfaces/adapters"
	"slidebridge/internal/interfaces/http/handlers"
	"slidebridge/internal/interfaces/http/middleware"
	"slidebridge/internal/interfaces/http/routes"
	"slidebridge/internal/shared/db"
	"slidebridge/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	mappingHandler   *handlers.MappingHandler
	alertHandler     *handlers.AlertHandler
	ticketHandler    *handlers.TicketHandler
	configHandler    *handlers.ConfigHandler
	directoryHandler *handlers.DirectoryHandler
	dashboardHandler *handlers.DashboardHandler
	healthHandler    *handlers.HealthHandler
	rateLimiter      *middleware.RateLimiter
	logger           logger.Interface
}

func initRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "addr", cfg.Redis.GetAddr(), "error", err)
	}

	return client
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	redisClient := initRedis(cfg)

	remoteTimeout := time.Duration(cfg.Sync.RemoteTimeoutSeconds) * time.Second
	cacheTTL := time.Duration(cfg.Sync.DirectoryCacheTTLMinutes) * time.Minute
	dirCache := cache.NewDirectoryCache(redisClient, cacheTTL)

	slideClient := slide.NewClient(&cfg.Slide, remoteTimeout, log)
	cwClient := connectwise.NewClient(&cfg.ConnectWise, remoteTimeout, log)

	mappingRepo := repository.NewClientMappingRepository(database)
	alertRepo := repository.NewAlertRepository(database)
	linkRepo := repository.NewTicketLinkRepository(database)
	configRepo := repository.NewTicketingConfigRepository(database)
	txManager := db.NewTransactionManager(database)

	slideDir := adapters.NewSlideDirectoryAdapter(slideClient, dirCache, log)
	companyDir := adapters.NewCompanyDirectoryAdapter(cwClient, dirCache, log)
	slideGateway := adapters.NewSlideGatewayAdapter(slideClient, dirCache, log)
	ticketGateway := adapters.NewTicketGatewayAdapter(cwClient)
	driftNotifier := adapters.NewDriftNotifierAdapter(email.NewDriftNotifier(&cfg.Notify))

	listMappingsUC := mappingUsecases.NewListMappingsUseCase(mappingRepo, slideDir, log)
	createMappingUC := mappingUsecases.NewCreateMappingUseCase(mappingRepo, log)
	deleteMappingUC := mappingUsecases.NewDeleteMappingUseCase(mappingRepo, log)
	autoMapUC := mappingUsecases.NewAutoMapClientsUseCase(mappingRepo, slideDir, companyDir, log)

	ingestUC := alertUsecases.NewIngestAlertsUseCase(alertRepo, slideGateway, log)
	listAlertsUC := alertUsecases.NewListAlertsUseCase(alertRepo, linkRepo, log)
	closeAlertUC := alertUsecases.NewCloseAlertUseCase(alertRepo, slideGateway, log)
	statsUC := alertUsecases.NewGetDashboardStatsUseCase(alertRepo, mappingRepo, linkRepo, slideGateway, log)

	createTicketUC := ticketingUsecases.NewCreateTicketForAlertUseCase(
		alertRepo, mappingRepo, configRepo, linkRepo, ticketGateway, txManager, log,
	)
	previewUC := ticketingUsecases.NewPreviewTicketUseCase(alertRepo, mappingRepo, configRepo, log)
	listLinksUC := ticketingUsecases.NewListTicketLinksUseCase(linkRepo, log)
	closeLinkUC := ticketingUsecases.NewCloseTicketLinkUseCase(linkRepo, alertRepo, txManager, log)
	reopenLinkUC := ticketingUsecases.NewReopenTicketLinkUseCase(linkRepo, alertRepo, txManager, log)
	reconcileUC := ticketingUsecases.NewReconcileTicketsUseCase(
		linkRepo, alertRepo, ticketGateway, driftNotifier,
		cfg.Sync.ReconcileConcurrency, remoteTimeout, log,
	)
	getConfigUC := ticketingUsecases.NewGetConfigUseCase(configRepo, log)
	saveConfigUC := ticketingUsecases.NewSaveConfigUseCase(configRepo, log)

	mappingHandler := handlers.NewMappingHandler(listMappingsUC, createMappingUC, deleteMappingUC, autoMapUC, log)
	alertHandler := handlers.NewAlertHandler(ingestUC, listAlertsUC, closeAlertUC, log)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, previewUC, listLinksUC, closeLinkUC, reopenLinkUC, reconcileUC, log,
	)
	configHandler := handlers.NewConfigHandler(getConfigUC, saveConfigUC, log)
	directoryHandler := handlers.NewDirectoryHandler(slideClient, cwClient, dirCache, log)
	dashboardHandler := handlers.NewDashboardHandler(statsUC, log)
	healthHandler := handlers.NewHealthHandler(database)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.Limit, window)
	}

	return &Router{
		engine:           engine,
		cfg:              cfg,
		mappingHandler:   mappingHandler,
		alertHandler:     alertHandler,
		ticketHandler:    ticketHandler,
		configHandler:    configHandler,
		directoryHandler: directoryHandler,
		dashboardHandler: dashboardHandler,
		healthHandler:    healthHandler,
		rateLimiter:      rateLimiter,
		logger:           log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/ready", r.healthHandler.Ready)

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	// The dashboard polls health through the API prefix.
	api.GET("/health", r.healthHandler.Health)

	routes.SetupMappingRoutes(api, &routes.MappingRouteConfig{
		MappingHandler: r.mappingHandler,
	})
	routes.SetupAlertRoutes(api, &routes.AlertRouteConfig{
		AlertHandler:  r.alertHandler,
		TicketHandler: r.ticketHandler,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		ConfigHandler: r.configHandler,
	})
	routes.SetupDirectoryRoutes(api, &routes.DirectoryRouteConfig{
		DirectoryHandler: r.directoryHandler,
	})

	api.GET("/dashboard", r.dashboardHandler.GetStats)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
