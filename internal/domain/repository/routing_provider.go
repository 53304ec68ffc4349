package repository

import (
	"context"

	"github.com/campus-housing-service/internal/domain"
)

// RoutingProvider определяет методы для запроса маршрутов у внешнего провайдера
type RoutingProvider interface {
	// FetchRoute requests a single route for the given mode. Returns
	// errors.ErrMissingAPIKey when no credential is configured and
	// ErrRouteUnavailable / ErrMalformedResponse on provider failures.
	FetchRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (*domain.RouteResult, error)

	// Route applies the two-attempt policy: transit first, one retry with
	// approximated_transit when the first attempt fails or reports a
	// non-positive duration. No backoff, no third attempt.
	Route(ctx context.Context, origin, destination domain.Coordinate) (*domain.RouteResult, error)
}
