package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// travelCache is the shared-backend alternative to the in-memory travel
// cache: same interface, JSON values keyed by listing id. TTL 0 keeps
// entries until restart of the Redis instance.
type travelCache struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewTravelCache создает Redis-кеш travel данных
func NewTravelCache(r *Redis, ttl time.Duration) repository.TravelCache {
	return &travelCache{
		client: r.Client(),
		logger: r.logger,
		ttl:    ttl,
	}
}

func travelKey(listingID string) string {
	return "travel:" + listingID
}

func (c *travelCache) Get(ctx context.Context, listingID string) (*domain.TravelData, error) {
	val, err := c.client.Get(ctx, travelKey(listingID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		c.logger.Error("Failed to get travel data from cache",
			zap.String("listing_id", listingID), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var data domain.TravelData
	if err := json.Unmarshal(val, &data); err != nil {
		c.logger.Error("Failed to unmarshal cached travel data",
			zap.String("listing_id", listingID), zap.Error(err))
		return nil, fmt.Errorf("unmarshal travel data: %w", err)
	}

	c.logger.Debug("Travel cache hit", zap.String("listing_id", listingID))
	return &data, nil
}

func (c *travelCache) Set(ctx context.Context, listingID string, data *domain.TravelData) error {
	val, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal travel data: %w", err)
	}

	if err := c.client.Set(ctx, travelKey(listingID), val, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to set travel data in cache",
			zap.String("listing_id", listingID), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	c.logger.Debug("Travel cache set",
		zap.String("listing_id", listingID), zap.Duration("ttl", c.ttl))
	return nil
}
