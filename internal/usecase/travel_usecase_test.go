package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/repository/memory"
	"github.com/campus-housing-service/internal/usecase"
)

// MockRoutingProvider is a mock of RoutingProvider
type MockRoutingProvider struct {
	mock.Mock
}

func (m *MockRoutingProvider) FetchRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (*domain.RouteResult, error) {
	args := m.Called(ctx, origin, destination, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteResult), args.Error(1)
}

func (m *MockRoutingProvider) Route(ctx context.Context, origin, destination domain.Coordinate) (*domain.RouteResult, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteResult), args.Error(1)
}

// MockPlacesProvider is a mock of PlacesProvider
type MockPlacesProvider struct {
	mock.Mock
}

func (m *MockPlacesProvider) FetchNearestStop(ctx context.Context, point domain.Coordinate, radiusMeters float64) (*domain.NearestStop, error) {
	args := m.Called(ctx, point, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NearestStop), args.Error(1)
}

var (
	campusA = domain.Campus{ID: "keele", Name: "Keele Campus", Coordinate: domain.Coordinate{Lat: 43.7735, Lng: -79.5019}}
	campusB = domain.Campus{ID: "markham", Name: "Markham Campus", Coordinate: domain.Coordinate{Lat: 43.8486, Lng: -79.3360}}

	listingCoord = domain.Coordinate{Lat: 43.7612, Lng: -79.4801}
)

func newTravelUC(routing *MockRoutingProvider, places *MockPlacesProvider) *usecase.TravelUseCase {
	return usecase.NewTravelUseCase(
		routing,
		places,
		memory.NewTravelCache(zap.NewNop()),
		[]domain.Campus{campusA, campusB},
		800,
		zap.NewNop(),
	)
}

func TestTravelUseCase_PartialFailure(t *testing.T) {
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	// Campus A fails, campus B succeeds with 900 seconds.
	routing.On("Route", mock.Anything, listingCoord, campusA.Coordinate).
		Return(nil, assert.AnError)
	routing.On("Route", mock.Anything, listingCoord, campusB.Coordinate).
		Return(&domain.RouteResult{
			DurationSeconds: 900,
			DurationMinutes: 15,
			TransitLabels:   []string{"Bus 24 Victoria Park"},
		}, nil)
	places.On("FetchNearestStop", mock.Anything, listingCoord, 800.0).
		Return(nil, nil)

	uc := newTravelUC(routing, places)
	data := uc.TravelDataFor(context.Background(), "1", listingCoord)

	require.NotNil(t, data)
	assert.Equal(t, domain.UnavailableMinutes, data.Campuses["keele"].Minutes)
	assert.Empty(t, data.Campuses["keele"].TransitLabels)
	assert.Nil(t, data.Campuses["keele"].Geometry)

	assert.Equal(t, 15, data.Campuses["markham"].Minutes)
	assert.Equal(t, []string{"Bus 24 Victoria Park"}, data.Campuses["markham"].TransitLabels)

	assert.Nil(t, data.NearestStop)
	routing.AssertExpectations(t)
}

func TestTravelUseCase_NearestStopIncluded(t *testing.T) {
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.RouteResult{DurationSeconds: 600, DurationMinutes: 10}, nil)

	stop := &domain.NearestStop{
		Name:           "Shoreham Dr at The Pond Rd",
		Coordinate:     domain.Coordinate{Lat: 43.7610, Lng: -79.4795},
		DistanceMeters: 120,
	}
	places.On("FetchNearestStop", mock.Anything, listingCoord, 800.0).
		Return(stop, nil)

	uc := newTravelUC(routing, places)
	data := uc.TravelDataFor(context.Background(), "1", listingCoord)

	require.NotNil(t, data.NearestStop)
	assert.Equal(t, stop, data.NearestStop)
}

func TestTravelUseCase_Idempotent(t *testing.T) {
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.RouteResult{DurationSeconds: 1200, DurationMinutes: 20}, nil)
	places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	uc := newTravelUC(routing, places)

	first := uc.TravelDataFor(context.Background(), "1", listingCoord)
	second := uc.TravelDataFor(context.Background(), "1", listingCoord)

	assert.Equal(t, first, second)
}

func TestTravelUseCase_CacheHitShortCircuits(t *testing.T) {
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.RouteResult{DurationSeconds: 600, DurationMinutes: 10}, nil)
	places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	uc := newTravelUC(routing, places)

	uc.TravelDataFor(context.Background(), "1", listingCoord)
	uc.TravelDataFor(context.Background(), "1", listingCoord)
	uc.TravelDataFor(context.Background(), "1", listingCoord)

	// One aggregation: one Route call per campus, one stop lookup.
	routing.AssertNumberOfCalls(t, "Route", 2)
	places.AssertNumberOfCalls(t, "FetchNearestStop", 1)
}

func TestTravelUseCase_ConcurrentMissesDeduplicated(t *testing.T) {
	routing := new(MockRoutingProvider)
	places := new(MockPlacesProvider)

	// Slow provider so all goroutines pile up on the same miss.
	routing.On("Route", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
		Return(&domain.RouteResult{DurationSeconds: 600, DurationMinutes: 10}, nil)
	places.On("FetchNearestStop", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	uc := newTravelUC(routing, places)

	var wg sync.WaitGroup
	results := make([]*domain.TravelData, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.TravelDataFor(context.Background(), "1", listingCoord)
		}(i)
	}
	wg.Wait()

	routing.AssertNumberOfCalls(t, "Route", 2)
	places.AssertNumberOfCalls(t, "FetchNearestStop", 1)

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestTravelUseCase_UnavailableData(t *testing.T) {
	uc := newTravelUC(new(MockRoutingProvider), new(MockPlacesProvider))

	data := uc.UnavailableData()

	require.Len(t, data.Campuses, 2)
	for _, campus := range []string{"keele", "markham"} {
		assert.Equal(t, domain.UnavailableMinutes, data.Campuses[campus].Minutes)
		assert.Empty(t, data.Campuses[campus].TransitLabels)
	}
	assert.Nil(t, data.NearestStop)
}
