package repository

import (
	"context"

	"github.com/campus-housing-service/internal/domain"
)

// TravelCache memoizes aggregated travel data per listing id. Implementations
// are injected into the usecase layer so tests can substitute an isolated
// instance and production can swap the in-memory map for a shared backend.
type TravelCache interface {
	// Get returns the cached record, or (nil, nil) on a miss.
	Get(ctx context.Context, listingID string) (*domain.TravelData, error)

	// Set stores the record for the given listing id. Last write wins.
	Set(ctx context.Context, listingID string, data *domain.TravelData) error
}
