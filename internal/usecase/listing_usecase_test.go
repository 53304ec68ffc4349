package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/pkg/errors"
	"github.com/campus-housing-service/internal/usecase"
	"github.com/campus-housing-service/internal/usecase/dto"
)

// MockListingRepository is a mock of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func testListing(id string, coordinate *domain.Coordinate) *domain.Listing {
	return &domain.Listing{
		ID:               id,
		Address:          "4700 Keele St, North York",
		AreaName:         "York University Village",
		Rent:             1850,
		SafetyScore:      4.2,
		ReliabilityScore: 4.5,
		FallbackMinutes:  map[string]int{"keele": 8, "markham": 52},
		Coordinate:       coordinate,
	}
}

func newListingUC(repo *MockListingRepository, routing *MockRoutingProvider, places *MockPlacesProvider) *usecase.ListingUseCase {
	return usecase.NewListingUseCase(repo, newTravelUC(routing, places), zap.NewNop())
}

func TestListingUseCase_FallbackReplacesSentinel(t *testing.T) {
	repo := new(MockListingRepository)
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	// Routing fully down: enriched minutes come from the static fallback,
	// the sentinel never leaks to the caller.
	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	repo.On("GetByID", mock.Anything, "1").
		Return(testListing("1", &listingCoord), nil)

	uc := newListingUC(repo, routing, places)
	enriched, err := uc.GetListing(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 8, enriched.MinutesTo["keele"])
	assert.Equal(t, 52, enriched.MinutesTo["markham"])
	assert.NotNil(t, enriched.TransitLabelsTo["keele"])
	assert.Empty(t, enriched.TransitLabelsTo["keele"])
}

func TestListingUseCase_LiveMinutesPreferred(t *testing.T) {
	repo := new(MockListingRepository)
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.RouteResult{
			DurationSeconds: 900,
			DurationMinutes: 15,
			TransitLabels:   []string{"Bus 106 York University"},
		}, nil)
	places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	repo.On("GetByID", mock.Anything, "1").
		Return(testListing("1", &listingCoord), nil)

	uc := newListingUC(repo, routing, places)
	enriched, err := uc.GetListing(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 15, enriched.MinutesTo["keele"])
	assert.Equal(t, 15, enriched.MinutesTo["markham"])
	assert.Equal(t, []string{"Bus 106 York University"}, enriched.TransitLabelsTo["keele"])
}

func TestListingUseCase_NoCoordinateSkipsProviders(t *testing.T) {
	repo := new(MockListingRepository)
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	repo.On("GetByID", mock.Anything, "1").
		Return(testListing("1", nil), nil)

	uc := newListingUC(repo, routing, places)
	enriched, err := uc.GetListing(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 8, enriched.MinutesTo["keele"])
	assert.Nil(t, enriched.NearestStop)
	routing.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything)
	places.AssertNotCalled(t, "FetchNearestStop", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingUseCase_InvalidCoordinateSkipsProviders(t *testing.T) {
	repo := new(MockListingRepository)
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	repo.On("GetByID", mock.Anything, "1").
		Return(testListing("1", &domain.Coordinate{Lat: 143.7, Lng: -79.4}), nil)

	uc := newListingUC(repo, routing, places)
	enriched, err := uc.GetListing(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 8, enriched.MinutesTo["keele"])
	routing.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingUseCase_GetListingNotFound(t *testing.T) {
	repo := new(MockListingRepository)
	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, errors.ErrListingNotFound)

	uc := newListingUC(repo, new(MockRoutingProvider), new(MockPlacesProvider))
	enriched, err := uc.GetListing(context.Background(), "missing")

	assert.Nil(t, enriched)
	assert.ErrorIs(t, err, errors.ErrListingNotFound)
}

func TestListingUseCase_ListListings(t *testing.T) {
	near := testListing("1", &listingCoord)

	far := testListing("2", &domain.Coordinate{Lat: 43.8765, Lng: -79.2665})
	far.Rent = 2100
	far.SafetyScore = 3.5
	far.ReliabilityScore = 3.2
	far.FallbackMinutes = map[string]int{"keele": 55, "markham": 12}

	setup := func() (*usecase.ListingUseCase, *MockRoutingProvider) {
		repo := new(MockListingRepository)
		routing := new(MockRoutingProvider)
		places := new(MockPlacesProvider)

		// Routing down for every listing; the filter runs on fallbacks.
		routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)
		places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil)
		repo.On("GetAll", mock.Anything).
			Return([]*domain.Listing{near, far}, nil)

		return newListingUC(repo, routing, places), routing
	}

	t.Run("default campus and commute cap", func(t *testing.T) {
		uc, _ := setup()

		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{})

		require.NoError(t, err)
		assert.Equal(t, "keele", resp.Campus)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "1", resp.Listings[0].ID)
	})

	t.Run("campus switch changes the survivors", func(t *testing.T) {
		uc, _ := setup()

		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{Campus: "markham"})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "2", resp.Listings[0].ID)
	})

	t.Run("commute cap is clamped to the maximum", func(t *testing.T) {
		uc, _ := setup()

		// 600 clamps down to 60, which admits both listings.
		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{MaxMinutes: 600})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("commute cap is clamped to the minimum", func(t *testing.T) {
		uc, _ := setup()

		// 1 clamps up to 10, keele fallback of 8 still passes.
		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{MaxMinutes: 1})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "1", resp.Listings[0].ID)
	})

	t.Run("rent filter", func(t *testing.T) {
		uc, _ := setup()

		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{
			MaxMinutes: 60,
			MaxRent:    1900,
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "1", resp.Listings[0].ID)
	})

	t.Run("safety and reliability filters", func(t *testing.T) {
		uc, _ := setup()

		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{
			MaxMinutes:     60,
			MinSafety:      4.0,
			MinReliability: 4.0,
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "1", resp.Listings[0].ID)
	})

	t.Run("unknown campus is rejected", func(t *testing.T) {
		uc, _ := setup()

		resp, err := uc.ListListings(context.Background(), dto.ListListingsRequest{Campus: "oshawa"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrInvalidCampus)
	})
}
