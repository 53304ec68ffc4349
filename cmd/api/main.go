package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/config"
	httpDelivery "github.com/campus-housing-service/internal/delivery/http"
	"github.com/campus-housing-service/internal/delivery/http/handler"
	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/campus-housing-service/internal/infrastructure/geoapify"
	"github.com/campus-housing-service/internal/pkg/logger"
	"github.com/campus-housing-service/internal/repository/cache"
	"github.com/campus-housing-service/internal/repository/memory"
	"github.com/campus-housing-service/internal/repository/postgres"
	"github.com/campus-housing-service/internal/repository/static"
	"github.com/campus-housing-service/internal/usecase"
	"github.com/campus-housing-service/internal/worker"
	"github.com/campus-housing-service/internal/worker/travel"
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

	log.Info("Starting Campus Housing Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("listings_backend", cfg.Listings.Backend),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	if cfg.Geoapify.APIKey == "" {
		log.Warn("GEOAPIFY_API_KEY is not set, travel data will be served from static fallbacks")
	}

	// 3. Initialize listing repository
	var listingRepo repository.ListingRepository
	var db *postgres.DB
	switch cfg.Listings.Backend {
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		listingRepo = postgres.NewListingRepository(db)
	default:
		listingRepo = static.NewListingRepository()
	}

	// 4. Initialize travel cache
	var travelCache repository.TravelCache
	var redisClient *cache.Redis
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		travelCache = cache.NewTravelCache(redisClient, cfg.Cache.TravelCacheTTL)
	default:
		travelCache = memory.NewTravelCache(log)
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if db != nil {
		if err := db.Health(ctx); err != nil {
			cancel()
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}
	cancel()

	// 6. Initialize Geoapify client and use cases
	geoClient := geoapify.NewClient(&cfg.Geoapify, log)

	campuses := make([]domain.Campus, len(cfg.Campuses))
	for i, c := range cfg.Campuses {
		campuses[i] = domain.Campus{
			ID:         c.ID,
			Name:       c.Name,
			Coordinate: domain.Coordinate{Lat: c.Lat, Lng: c.Lng},
		}
	}

	travelUC := usecase.NewTravelUseCase(
		geoClient,
		geoClient,
		travelCache,
		campuses,
		cfg.Geoapify.StopSearchRadius,
		log,
	)
	listingUC := usecase.NewListingUseCase(listingRepo, travelUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers and server
	listingHandler := handler.NewListingHandler(listingUC, log)
	server := httpDelivery.NewServer(cfg, log, listingHandler)

	log.Info("HTTP server initialized")

	// 8. Optional in-process cache prewarm
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(travel.NewCachePrewarmWorker(
			listingRepo,
			travelUC,
			cfg.Worker.PrewarmInterval,
			log,
		))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

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

	if workerManager != nil {
		workerCancel()
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
