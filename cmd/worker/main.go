package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/config"
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

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel Cache Prewarm Worker")
	log.Info("Configuration loaded",
		zap.Duration("prewarm_interval", cfg.Worker.PrewarmInterval),
		zap.String("listings_backend", cfg.Listings.Backend),
		zap.String("cache_backend", cfg.Cache.Backend))

	// 3. Initialize listing repository
	var listingRepo repository.ListingRepository
	switch cfg.Listings.Backend {
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
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

	// 4. Initialize travel cache. A standalone prewarm run only makes sense
	// against a shared backend, so anything but redis is a config mistake.
	var travelCache repository.TravelCache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
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
		log.Warn("Prewarming an in-process cache has no effect outside this process, use CACHE_BACKEND=redis")
		travelCache = memory.NewTravelCache(log)
	}

	// 5. Initialize use case
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

	// 6. Initialize workers
	prewarmWorker := travel.NewCachePrewarmWorker(
		listingRepo,
		travelUC,
		cfg.Worker.PrewarmInterval,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(prewarmWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
