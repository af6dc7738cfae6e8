package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	alertUsecases "slidebridge/internal/application/alert/usecases"
	ticketingUsecases "slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/config"
	"slidebridge/internal/infrastructure/connectwise"
	"slidebridge/internal/infrastructure/database"
	"slidebridge/internal/infrastructure/email"
	"slidebridge/internal/infrastructure/repository"
	"slidebridge/internal/infrastructure/slide"
	"slidebridge/internal/interfaces/adapters"
	"slidebridge/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting sync worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	remoteTimeout := time.Duration(cfg.Sync.RemoteTimeoutSeconds) * time.Second
	cacheTTL := time.Duration(cfg.Sync.DirectoryCacheTTLMinutes) * time.Minute
	dirCache := cache.NewDirectoryCache(redisClient, cacheTTL)

	slideClient := slide.NewClient(&cfg.Slide, remoteTimeout, log)
	cwClient := connectwise.NewClient(&cfg.ConnectWise, remoteTimeout, log)

	alertRepo := repository.NewAlertRepository(database.Get())
	linkRepo := repository.NewTicketLinkRepository(database.Get())

	slideGateway := adapters.NewSlideGatewayAdapter(slideClient, dirCache, log)
	ticketGateway := adapters.NewTicketGatewayAdapter(cwClient)
	driftNotifier := adapters.NewDriftNotifierAdapter(email.NewDriftNotifier(&cfg.Notify))

	ingestUC := alertUsecases.NewIngestAlertsUseCase(alertRepo, slideGateway, log)
	reconcileUC := ticketingUsecases.NewReconcileTicketsUseCase(
		linkRepo, alertRepo, ticketGateway, driftNotifier,
		cfg.Sync.ReconcileConcurrency, remoteTimeout, log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ingestInterval := time.Duration(cfg.Sync.IngestIntervalMinutes) * time.Minute
	reconcileInterval := time.Duration(cfg.Sync.ReconcileIntervalMinutes) * time.Minute

	ingestTicker := time.NewTicker(ingestInterval)
	defer ingestTicker.Stop()
	reconcileTicker := time.NewTicker(reconcileInterval)
	defer reconcileTicker.Stop()

	// Pull alerts once at startup so a fresh deployment is not empty until
	// the first tick.
	runIngest(ctx, ingestUC, log)

	log.Infow("sync worker started",
		"ingest_interval", ingestInterval,
		"reconcile_interval", reconcileInterval)

	for {
		select {
		case <-ingestTicker.C:
			runIngest(ctx, ingestUC, log)

		case <-reconcileTicker.C:
			runReconcile(ctx, reconcileUC, log)

		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)
			return
		}
	}
}

func runIngest(ctx context.Context, uc *alertUsecases.IngestAlertsUseCase, log logger.Interface) {
	result, err := uc.Execute(ctx)
	if err != nil {
		log.Errorw("alert ingest failed", "error", err)
		return
	}
	log.Infow("alert ingest completed",
		"fetched", result.Fetched,
		"stored", result.Stored,
		"errors", result.Errors)
}

func runReconcile(ctx context.Context, uc *ticketingUsecases.ReconcileTicketsUseCase, log logger.Interface) {
	result, err := uc.Execute(ctx)
	if err != nil {
		log.Errorw("ticket reconciliation failed", "error", err)
		return
	}
	log.Infow("ticket reconciliation completed",
		"checked", result.Checked,
		"needs_sync", result.NeedsSync,
		"errored", result.Errored)
}
