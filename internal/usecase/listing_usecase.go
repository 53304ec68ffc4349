package usecase

import (
	"context"
	"sync"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/campus-housing-service/internal/pkg/errors"
	"github.com/campus-housing-service/internal/pkg/utils"
	"github.com/campus-housing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultMaxMinutes = 25
	minMaxMinutes     = 10
	maxMaxMinutes     = 60
)

// ListingUseCase - use case для поиска и выдачи объявлений.
// Combines the static listing store with aggregated travel data and applies
// the commute / rent / safety / reliability filters.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	travelUC    *TravelUseCase
	logger      *zap.Logger
}

// NewListingUseCase создает новый ListingUseCase
func NewListingUseCase(
	listingRepo repository.ListingRepository,
	travelUC *TravelUseCase,
	logger *zap.Logger,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		travelUC:    travelUC,
		logger:      logger,
	}
}

// Campuses возвращает настроенный набор кампусов
func (uc *ListingUseCase) Campuses() []domain.Campus {
	return uc.travelUC.Campuses()
}

// ListListings возвращает обогащенные объявления с фильтрацией по кампусу
func (uc *ListingUseCase) ListListings(ctx context.Context, req dto.ListListingsRequest) (*dto.ListListingsResponse, error) {
	campusID := req.Campus
	if campusID == "" {
		campusID = "keele"
	}
	if !uc.knownCampus(campusID) {
		return nil, errors.ErrInvalidCampus.WithDetails(map[string]interface{}{
			"campus": campusID,
		})
	}

	maxMinutes := req.MaxMinutes
	if maxMinutes == 0 {
		maxMinutes = defaultMaxMinutes
	}
	if maxMinutes < minMaxMinutes {
		maxMinutes = minMaxMinutes
	}
	if maxMinutes > maxMaxMinutes {
		maxMinutes = maxMaxMinutes
	}

	all, err := uc.listingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load listings", zap.Error(err))
		return nil, err
	}

	// Enrich every listing in parallel; the travel usecase caches and
	// deduplicates, so repeated searches cost no upstream calls.
	enriched := make([]*domain.EnrichedListing, len(all))
	var wg sync.WaitGroup
	for i, listing := range all {
		wg.Add(1)
		go func(i int, listing *domain.Listing) {
			defer wg.Done()
			enriched[i] = uc.enrich(ctx, listing)
		}(i, listing)
	}
	wg.Wait()

	results := make([]*domain.EnrichedListing, 0, len(enriched))
	for _, e := range enriched {
		if e.MinutesTo[campusID] > maxMinutes {
			continue
		}
		if req.MaxRent > 0 && e.Rent > req.MaxRent {
			continue
		}
		if req.MinSafety > 0 && e.SafetyScore < req.MinSafety {
			continue
		}
		if req.MinReliability > 0 && e.ReliabilityScore < req.MinReliability {
			continue
		}
		results = append(results, e)
	}

	return &dto.ListListingsResponse{
		Listings: results,
		Campus:   campusID,
		Total:    len(results),
	}, nil
}

// GetListing возвращает одно обогащенное объявление
func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*domain.EnrichedListing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, listing), nil
}

// GetTravelData возвращает сырую travel запись (до подстановки fallback)
func (uc *ListingUseCase) GetTravelData(ctx context.Context, id string) (*domain.TravelData, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c := listing.Coordinate
	if c == nil || !utils.ValidateCoordinates(c.Lat, c.Lng) {
		return uc.travelUC.UnavailableData(), nil
	}
	return uc.travelUC.TravelDataFor(ctx, listing.ID, *c), nil
}

func (uc *ListingUseCase) knownCampus(id string) bool {
	for _, c := range uc.travelUC.Campuses() {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (uc *ListingUseCase) enrich(ctx context.Context, listing *domain.Listing) *domain.EnrichedListing {
	var travel *domain.TravelData
	if c := listing.Coordinate; c != nil && utils.ValidateCoordinates(c.Lat, c.Lng) {
		travel = uc.travelUC.TravelDataFor(ctx, listing.ID, *c)
	} else {
		// Never geocoded or bad data: skip the providers entirely.
		travel = uc.travelUC.UnavailableData()
	}
	return merge(listing, travel, uc.travelUC.Campuses())
}

// merge combines a static listing with its travel record. Sentinel minutes
// are replaced by the listing's static fallback; labels, geometry and the
// nearest stop pass through as-is, absent values stay absent.
func merge(listing *domain.Listing, travel *domain.TravelData, campuses []domain.Campus) *domain.EnrichedListing {
	enriched := &domain.EnrichedListing{
		Listing:         *listing,
		MinutesTo:       make(map[string]int, len(campuses)),
		TransitLabelsTo: make(map[string][]string, len(campuses)),
		RouteGeometryTo: make(map[string]domain.RouteGeometry),
		NearestStop:     travel.NearestStop,
	}

	for _, campus := range campuses {
		ct, ok := travel.Campuses[campus.ID]

		minutes := ct.Minutes
		if !ok || minutes == domain.UnavailableMinutes {
			if fallback, has := listing.FallbackMinutes[campus.ID]; has {
				minutes = fallback
			}
		}
		enriched.MinutesTo[campus.ID] = minutes

		if ct.TransitLabels != nil {
			enriched.TransitLabelsTo[campus.ID] = ct.TransitLabels
		} else {
			enriched.TransitLabelsTo[campus.ID] = []string{}
		}
		if ct.Geometry != nil {
			enriched.RouteGeometryTo[campus.ID] = ct.Geometry
		}
	}

	return enriched
}
