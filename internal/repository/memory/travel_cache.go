package memory

import (
	"context"
	"sync"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"go.uber.org/zap"
)

// travelCache memoizes travel data for the lifetime of the process.
// No TTL, no eviction, no size bound: the listing set is small and a stale
// commute estimate is acceptable until restart.
type travelCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.TravelData
	logger  *zap.Logger
}

// NewTravelCache создает in-memory кеш travel данных
func NewTravelCache(logger *zap.Logger) repository.TravelCache {
	return &travelCache{
		entries: make(map[string]*domain.TravelData),
		logger:  logger,
	}
}

func (c *travelCache) Get(ctx context.Context, listingID string) (*domain.TravelData, error) {
	c.mu.RLock()
	data, ok := c.entries[listingID]
	c.mu.RUnlock()

	if !ok {
		return nil, nil // Cache miss
	}

	c.logger.Debug("Travel cache hit", zap.String("listing_id", listingID))
	return data, nil
}

func (c *travelCache) Set(ctx context.Context, listingID string, data *domain.TravelData) error {
	c.mu.Lock()
	c.entries[listingID] = data
	c.mu.Unlock()

	c.logger.Debug("Travel cache set", zap.String("listing_id", listingID))
	return nil
}
