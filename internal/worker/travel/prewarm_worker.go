package travel

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/campus-housing-service/internal/usecase"
	"github.com/campus-housing-service/internal/worker"
)

// CachePrewarmWorker периодически прогревает travel кеш для всех объявлений.
// Each sweep walks the listing set and requests travel data for every
// geocoded listing, so interactive searches hit a warm cache instead of
// paying for upstream routing calls.
type CachePrewarmWorker struct {
	*worker.BaseWorker
	listingRepo repository.ListingRepository
	travelUC    *usecase.TravelUseCase
	interval    time.Duration
}

// NewCachePrewarmWorker создает новый CachePrewarmWorker
func NewCachePrewarmWorker(
	listingRepo repository.ListingRepository,
	travelUC *usecase.TravelUseCase,
	interval time.Duration,
	logger *zap.Logger,
) *CachePrewarmWorker {
	return &CachePrewarmWorker{
		BaseWorker:  worker.NewBaseWorker("travel-cache-prewarm", logger),
		listingRepo: listingRepo,
		travelUC:    travelUC,
		interval:    interval,
	}
}

// Start запускает воркер
func (w *CachePrewarmWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CachePrewarmWorker",
		zap.Duration("interval", w.interval))

	// Первый прогрев сразу, дальше по таймеру
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep прогревает кеш для всех объявлений с координатами
func (w *CachePrewarmWorker) sweep(ctx context.Context) {
	logger := w.Logger()
	sweepID := uuid.New().String()
	start := time.Now()

	listings, err := w.listingRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load listings for prewarm",
			zap.String("sweep_id", sweepID),
			zap.Error(err))
		return
	}

	warmed := 0
	skipped := 0
	for _, listing := range listings {
		select {
		case <-w.StopChan():
			return
		case <-ctx.Done():
			return
		default:
		}

		if listing.Coordinate == nil {
			skipped++
			continue
		}

		w.travelUC.TravelDataFor(ctx, listing.ID, *listing.Coordinate)
		warmed++
	}

	logger.Info("Prewarm sweep completed",
		zap.String("sweep_id", sweepID),
		zap.Int("warmed", warmed),
		zap.Int("skipped", skipped),
		zap.Duration("duration", time.Since(start)))
}
