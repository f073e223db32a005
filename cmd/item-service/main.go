package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/audit"
	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/db"
	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/redis"
	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/rest"
	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/session"
	"github.com/ameerhamza-malik/ItemManagement/internal/app"
	"github.com/ameerhamza-malik/ItemManagement/internal/config"
	"github.com/ameerhamza-malik/ItemManagement/internal/platform/metrics"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	initLogging(cfg)

	log.Info().Msg("Starting Item Management Service...")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbConn.Close()

	log.Info().Msg("Database connection established")

	// Apply pending schema migrations
	if err := db.RunMigrations(ctx, dbConn); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	log.Info().Msg("Database schema up to date")

	// Create repositories
	repoFactory := db.NewRepositoryFactory(dbConn)
	itemRepo := repoFactory.GetItemRepository()
	userRepo := repoFactory.GetUserRepository()
	auditRepo := repoFactory.GetAuditRepository()

	log.Info().Msg("Database repositories initialized")

	// Create Redis client for session storage
	redisClient := redis.NewClient(cfg)
	if err := redis.PingRedis(redisClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Msg("Redis connection established")

	sessionStore := session.NewRedisStore(session.RedisStoreParams{
		RedisClient: redisClient,
		Logger:      log.Logger,
	})

	// Create the asynchronous audit recorder
	auditRecorder := audit.NewRecorder(audit.RecorderParams{
		Repo:        auditRepo,
		MaxWorkers:  config.AuditMaxWorkers,
		MaxCapacity: config.AuditMaxCapacity,
		Logger:      log.Logger,
	})

	// Register Prometheus metrics
	appMetrics := metrics.New()

	// Create business services
	itemService := app.NewItemService(app.ItemServiceParams{
		ItemRepo:        itemRepo,
		Audit:           auditRecorder,
		Metrics:         appMetrics,
		DefaultPageSize: cfg.Pagination.PageSize,
		Logger:          log.Logger,
	})
	authService := app.NewAuthService(app.AuthServiceParams{
		UserRepo:   userRepo,
		Sessions:   sessionStore,
		Metrics:    appMetrics,
		BcryptCost: cfg.Auth.BcryptCost,
		SessionTTL: cfg.Session.TTL,
		Logger:     log.Logger,
	})

	log.Info().Msg("Business services initialized")

	restServer := rest.NewServer(rest.ServerParams{
		Config:      cfg,
		ItemService: itemService,
		AuthService: authService,
		Logger:      log.Logger,
	})

	log.Info().Msg("HTTP server initialized")

	// Start HTTP server
	go func() {
		if err := restServer.Start(); err != nil {
			log.Error().Err(err).Msg("Failed to start HTTP server")
			cancel()
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	log.Info().Msg("Starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop HTTP server first so no new audit events are produced
	if err := restServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping HTTP server")
	}

	// Drain pending audit events
	auditRecorder.Stop()
	log.Info().Msg("Audit recorder stopped")

	log.Info().Msg("Graceful shutdown completed")
}

func initLogging(cfg *config.Config) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.Logging.Format == "json" {
		// JSON format (default)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Console format for development
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set global logger
	zerolog.DefaultContextLogger = &log.Logger
}
