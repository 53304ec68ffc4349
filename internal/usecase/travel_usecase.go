package usecase

import (
	"context"
	"sync"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"go.uber.org/zap"
)

// TravelUseCase - use case для обогащения объявлений travel данными.
// It aggregates one routing call per campus plus one nearest-stop lookup,
// memoizes the result per listing id, and deduplicates concurrent fetches
// for the same id so one aggregation serves every waiter.
type TravelUseCase struct {
	routing    repository.RoutingProvider
	places     repository.PlacesProvider
	cache      repository.TravelCache
	campuses   []domain.Campus
	stopRadius float64
	logger     *zap.Logger

	mu       sync.Mutex
	inflight map[string]*inflightFetch
}

// inflightFetch is one pending aggregation. data is set before done closes.
type inflightFetch struct {
	done chan struct{}
	data *domain.TravelData
}

// NewTravelUseCase создает новый TravelUseCase
func NewTravelUseCase(
	routing repository.RoutingProvider,
	places repository.PlacesProvider,
	cache repository.TravelCache,
	campuses []domain.Campus,
	stopRadius float64,
	logger *zap.Logger,
) *TravelUseCase {
	return &TravelUseCase{
		routing:    routing,
		places:     places,
		cache:      cache,
		campuses:   campuses,
		stopRadius: stopRadius,
		logger:     logger,
		inflight:   make(map[string]*inflightFetch),
	}
}

// Campuses возвращает настроенный набор кампусов
func (uc *TravelUseCase) Campuses() []domain.Campus {
	return uc.campuses
}

// TravelDataFor returns the travel record for a listing coordinate. Never
// fails: every upstream error degrades to the unavailable sentinel or an
// absent stop, so callers need no failure handling of their own.
func (uc *TravelUseCase) TravelDataFor(
	ctx context.Context,
	listingID string,
	coordinate domain.Coordinate,
) *domain.TravelData {
	if data, err := uc.cache.Get(ctx, listingID); err == nil && data != nil {
		return data
	} else if err != nil {
		uc.logger.Warn("Travel cache read failed, refetching",
			zap.String("listing_id", listingID), zap.Error(err))
	}

	// Per-key in-flight guard: concurrent misses for one id await a single
	// shared aggregation instead of issuing duplicate upstream calls.
	uc.mu.Lock()
	if pending, ok := uc.inflight[listingID]; ok {
		uc.mu.Unlock()
		<-pending.done
		return pending.data
	}
	pending := &inflightFetch{done: make(chan struct{})}
	uc.inflight[listingID] = pending
	uc.mu.Unlock()

	data := uc.aggregate(ctx, coordinate)

	if err := uc.cache.Set(ctx, listingID, data); err != nil {
		uc.logger.Warn("Failed to cache travel data",
			zap.String("listing_id", listingID), zap.Error(err))
	}

	pending.data = data
	uc.mu.Lock()
	delete(uc.inflight, listingID)
	uc.mu.Unlock()
	close(pending.done)

	return data
}

// UnavailableData возвращает запись без live данных (все значения sentinel).
// Used for listings that were never geocoded.
func (uc *TravelUseCase) UnavailableData() *domain.TravelData {
	data := &domain.TravelData{
		Campuses: make(map[string]domain.CampusTravel, len(uc.campuses)),
	}
	for _, campus := range uc.campuses {
		data.Campuses[campus.ID] = domain.CampusTravel{
			Minutes:       domain.UnavailableMinutes,
			TransitLabels: []string{},
		}
	}
	return data
}

// aggregate issues all upstream calls in parallel and waits for every one
// to settle. Each campus is independent: partial failure fills only that
// campus slot with the sentinel.
func (uc *TravelUseCase) aggregate(ctx context.Context, coordinate domain.Coordinate) *domain.TravelData {
	routes := make([]*domain.RouteResult, len(uc.campuses))
	var stop *domain.NearestStop

	var wg sync.WaitGroup
	for i, campus := range uc.campuses {
		wg.Add(1)
		go func(i int, campus domain.Campus) {
			defer wg.Done()

			route, err := uc.routing.Route(ctx, coordinate, campus.Coordinate)
			if err != nil {
				uc.logger.Warn("Route unavailable",
					zap.String("campus", campus.ID),
					zap.Error(err))
				return
			}
			routes[i] = route
		}(i, campus)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		s, err := uc.places.FetchNearestStop(ctx, coordinate, uc.stopRadius)
		if err != nil {
			uc.logger.Warn("Nearest stop lookup failed", zap.Error(err))
			return
		}
		stop = s
	}()

	wg.Wait()

	data := &domain.TravelData{
		Campuses:    make(map[string]domain.CampusTravel, len(uc.campuses)),
		NearestStop: stop,
	}

	for i, campus := range uc.campuses {
		route := routes[i]
		if route == nil {
			data.Campuses[campus.ID] = domain.CampusTravel{
				Minutes:       domain.UnavailableMinutes,
				TransitLabels: []string{},
			}
			continue
		}
		labels := route.TransitLabels
		if labels == nil {
			labels = []string{}
		}
		data.Campuses[campus.ID] = domain.CampusTravel{
			Minutes:       route.DurationMinutes,
			TransitLabels: labels,
			Geometry:      route.Geometry,
		}
	}

	return data
}
