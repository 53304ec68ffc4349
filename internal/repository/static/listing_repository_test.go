package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-housing-service/internal/pkg/errors"
)

func TestListingRepository_GetAll(t *testing.T) {
	repo := NewListingRepository()

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 12)

	for _, l := range all {
		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.Address)
		// Every listing carries a fallback for every campus.
		assert.Contains(t, l.FallbackMinutes, "keele")
		assert.Contains(t, l.FallbackMinutes, "markham")
		assert.Contains(t, l.FallbackMinutes, "glendon")
	}
}

func TestListingRepository_GetByID(t *testing.T) {
	repo := NewListingRepository()

	listing, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "4700 Keele St, North York", listing.Address)
	require.NotNil(t, listing.Coordinate)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, errors.ErrListingNotFound)
}

func TestListingRepository_UngeocodedListing(t *testing.T) {
	repo := NewListingRepository()

	listing, err := repo.GetByID(context.Background(), "12")
	require.NoError(t, err)
	assert.Nil(t, listing.Coordinate)
	assert.NotEmpty(t, listing.FallbackMinutes)
}
