package repository

import (
	"context"

	"github.com/campus-housing-service/internal/domain"
)

// PlacesProvider определяет методы для поиска ближайших остановок транспорта
type PlacesProvider interface {
	// FetchNearestStop returns the closest transit stop within radiusMeters
	// of the point, or (nil, nil) when there is none. Missing credential,
	// provider errors and empty result sets are all the nil outcome, not
	// errors: no stop nearby is a normal answer.
	FetchNearestStop(ctx context.Context, point domain.Coordinate, radiusMeters float64) (*domain.NearestStop, error)
}
