package main

// @title Trip Planner API
// @version 1.0.0
// @description Travel itinerary planning service. Serves the static city and
// @description category catalog, generates multi-day travel plans through a
// @description chat-completion model (with a deterministic fallback template),
// @description and keeps the per-session planning state and saved plans.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trip-planner/internal/config"
	httpDelivery "github.com/trip-planner/internal/delivery/http"
	"github.com/trip-planner/internal/delivery/http/handler"
	"github.com/trip-planner/internal/infrastructure/deepseek"
	"github.com/trip-planner/internal/pkg/logger"
	"github.com/trip-planner/internal/repository/cache"
	"github.com/trip-planner/internal/repository/catalog"
	redisRepo "github.com/trip-planner/internal/repository/redis"
	"github.com/trip-planner/internal/usecase"
	"go.uber.org/zap"

	_ "github.com/trip-planner/docs"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "trip-planner-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Planner Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis (durable store + event stream)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize Repositories
	catalogRepo := catalog.NewCatalogRepository(&cfg.Catalog, log)
	storeRepo := cache.NewStoreRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	generator := deepseek.NewClient(&cfg.LLM, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(
		catalogRepo,
		storeRepo,
		log,
		cfg.Cache.CitiesCacheTTL,
	)

	planUC := usecase.NewPlanUseCase(
		generator,
		storeRepo,
		streamRepo,
		log,
		cfg.LLM.SimulatedDelay,
	)

	sessionUC := usecase.NewSessionUseCase(storeRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	planHandler := handler.NewPlanHandler(planUC, sessionUC, log)
	credentialHandler := handler.NewCredentialHandler(planUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		catalogHandler,
		planHandler,
		credentialHandler,
		sessionHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
