package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/midway/midway-backend/internal/config"
	httpDelivery "github.com/midway/midway-backend/internal/delivery/http"
	"github.com/midway/midway-backend/internal/delivery/http/handler"
	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/infrastructure/overpass"
	"github.com/midway/midway-backend/internal/infrastructure/postcodes"
	"github.com/midway/midway-backend/internal/pkg/logger"
	"github.com/midway/midway-backend/internal/pkg/token"
	"github.com/midway/midway-backend/internal/repository/cache"
	"github.com/midway/midway-backend/internal/repository/postgres"
	"github.com/midway/midway-backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Midway Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and external clients
	userRepo := postgres.NewUserRepository(db)
	friendshipRepo := postgres.NewFriendshipRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	rateLimitRepo := cache.NewRateLimitRepository(redisClient)

	catalog := domain.NewDefaultVenueCatalog()
	geocoder := postcodes.NewClient(&cfg.Geocoder, log)
	venueIndex := overpass.NewClient(&cfg.VenueIndex, catalog, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	venueUC := usecase.NewVenueSearchUseCase(
		geocoder,
		venueIndex,
		catalog,
		cfg.VenueIndex.SearchRadiusM,
		log,
	)
	authUC := usecase.NewAuthUseCase(userRepo, tokens, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	friendUC := usecase.NewFriendUseCase(friendshipRepo, userRepo, log)
	groupUC := usecase.NewGroupUseCase(groupRepo, userRepo, venueUC, log)

	log.Info("Use cases initialized")

	// 8. Initialize handlers
	venueHandler := handler.NewVenueHandler(venueUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	friendHandler := handler.NewFriendHandler(friendUC, log)
	groupHandler := handler.NewGroupHandler(groupUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tokens,
		rateLimitRepo,
		venueHandler,
		authHandler,
		userHandler,
		friendHandler,
		groupHandler,
		db,
		redisClient,
	)

	// 10. Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully")

	// 11. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	// 12. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
