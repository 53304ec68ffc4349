package memory

import (
	"context"
	"testing"

	"github.com/campus-housing-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTravelCache_RoundTrip(t *testing.T) {
	cache := NewTravelCache(zap.NewNop())
	ctx := context.Background()

	// Miss before any set.
	got, err := cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, got)

	data := &domain.TravelData{
		Campuses: map[string]domain.CampusTravel{
			"keele":   {Minutes: 18, TransitLabels: []string{"Bus 196 York University Rocket"}},
			"markham": {Minutes: domain.UnavailableMinutes, TransitLabels: []string{}},
		},
		NearestStop: &domain.NearestStop{
			Name:           "Keele St at Finch Ave",
			Coordinate:     domain.Coordinate{Lat: 43.76, Lng: -79.49},
			DistanceMeters: 210,
		},
	}

	require.NoError(t, cache.Set(ctx, "1", data))

	got, err = cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Other keys are unaffected.
	got, err = cache.Get(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTravelCache_LastWriteWins(t *testing.T) {
	cache := NewTravelCache(zap.NewNop())
	ctx := context.Background()

	first := &domain.TravelData{Campuses: map[string]domain.CampusTravel{"keele": {Minutes: 10}}}
	second := &domain.TravelData{Campuses: map[string]domain.CampusTravel{"keele": {Minutes: 20}}}

	require.NoError(t, cache.Set(ctx, "1", first))
	require.NoError(t, cache.Set(ctx, "1", second))

	got, err := cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Campuses["keele"].Minutes)
}
