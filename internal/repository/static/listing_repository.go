package static

import (
	"context"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/campus-housing-service/internal/pkg/errors"
)

// listingRepository serves the embedded listing dataset. It is the default
// store for local development and the demo deployment; the Postgres
// repository replaces it behind the same interface.
type listingRepository struct {
	listings []*domain.Listing
}

// NewListingRepository создает статический репозиторий объявлений
func NewListingRepository() repository.ListingRepository {
	return &listingRepository{listings: listings}
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	for _, l := range r.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errors.ErrListingNotFound
}

func (r *listingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	result := make([]*domain.Listing, len(r.listings))
	copy(result, r.listings)
	return result, nil
}

func coord(lat, lng float64) *domain.Coordinate {
	return &domain.Coordinate{Lat: lat, Lng: lng}
}

var listings = []*domain.Listing{
	{
		ID:                  "1",
		Address:             "4700 Keele St, North York",
		AreaName:            "York University Village",
		Rent:                1850,
		SafetyScore:         4.2,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.5,
		FrequencySummary:    "TTC 196 every ~8 min",
		PrimaryRouteSummary: "TTC 196B to York University (direct)",
		FallbackMinutes:     map[string]int{"keele": 8, "markham": 52, "glendon": 34},
		Coordinate:          coord(43.7735, -79.5019),
	},
	{
		ID:                  "2",
		Address:             "1 Shoreham Dr, North York",
		AreaName:            "Downsview",
		Rent:                1650,
		SafetyScore:         4.0,
		SafetyLabel:         "Safe",
		ReliabilityScore:    4.0,
		FrequencySummary:    "TTC 106 every ~10 min",
		PrimaryRouteSummary: "TTC 106 to York University Station",
		FallbackMinutes:     map[string]int{"keele": 12, "markham": 48, "glendon": 38},
		Coordinate:          coord(43.7612, -79.4801),
	},
	{
		ID:                  "3",
		Address:             "3200 Dufferin St, North York",
		AreaName:            "Lawrence Manor",
		Rent:                1750,
		SafetyScore:         4.3,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.2,
		FrequencySummary:    "TTC 96 every ~6 min",
		PrimaryRouteSummary: "TTC 96 to York University",
		FallbackMinutes:     map[string]int{"keele": 18, "markham": 45, "glendon": 27},
		Coordinate:          coord(43.7245, -79.4521),
	},
	{
		ID:                  "4",
		Address:             "2500 Steeles Ave W, Vaughan",
		AreaName:            "Concord",
		Rent:                1900,
		SafetyScore:         4.5,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.0,
		FrequencySummary:    "YRT 20 every ~15 min",
		PrimaryRouteSummary: "YRT 20 to Pioneer Village Station, then subway to Keele",
		FallbackMinutes:     map[string]int{"keele": 22, "markham": 28, "glendon": 42},
		Coordinate:          coord(43.7945, -79.5123),
	},
	{
		ID:                  "5",
		Address:             "15 Library Lane, Markham",
		AreaName:            "Markham Centre",
		Rent:                1950,
		SafetyScore:         4.6,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.2,
		FrequencySummary:    "YRT 1 every ~12 min",
		PrimaryRouteSummary: "YRT 1 to Markham Campus (direct)",
		FallbackMinutes:     map[string]int{"keele": 55, "markham": 12, "glendon": 46},
		Coordinate:          coord(43.8765, -79.2665),
	},
	{
		ID:                  "6",
		Address:             "7271 Kennedy Rd, Markham",
		AreaName:            "Milliken",
		Rent:                1720,
		SafetyScore:         4.4,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    3.8,
		FrequencySummary:    "YRT 24 every ~15 min",
		PrimaryRouteSummary: "YRT 24 to Markham Campus",
		FallbackMinutes:     map[string]int{"keele": 48, "markham": 18, "glendon": 40},
		Coordinate:          coord(43.8321, -79.2687),
	},
	{
		ID:                  "7",
		Address:             "550 Wilson Ave, North York",
		AreaName:            "Bathurst Manor",
		Rent:                1680,
		SafetyScore:         4.1,
		SafetyLabel:         "Safe",
		ReliabilityScore:    4.3,
		FrequencySummary:    "TTC 96 every ~6 min",
		PrimaryRouteSummary: "TTC 96 to York University",
		FallbackMinutes:     map[string]int{"keele": 20, "markham": 42, "glendon": 29},
		Coordinate:          coord(43.7589, -79.4412),
	},
	{
		ID:                  "8",
		Address:             "100 Borough Dr, Scarborough",
		AreaName:            "Scarborough Town Centre",
		Rent:                1620,
		SafetyScore:         3.9,
		SafetyLabel:         "Generally safe",
		ReliabilityScore:    3.9,
		FrequencySummary:    "TTC 95 every ~8 min",
		PrimaryRouteSummary: "TTC 95 to York University",
		FallbackMinutes:     map[string]int{"keele": 38, "markham": 25, "glendon": 33},
		Coordinate:          coord(43.7731, -79.2542),
	},
	{
		ID:                  "9",
		Address:             "5000 Yonge St, North York",
		AreaName:            "North York Centre",
		Rent:                2100,
		SafetyScore:         4.4,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.5,
		FrequencySummary:    "TTC Line 1 every ~3 min",
		PrimaryRouteSummary: "Subway to Sheppard West, TTC 196 to York",
		FallbackMinutes:     map[string]int{"keele": 25, "markham": 38, "glendon": 21},
		Coordinate:          coord(43.7672, -79.4123),
	},
	{
		ID:                  "10",
		Address:             "88 Copper Creek Dr, Markham",
		AreaName:            "Cornell",
		Rent:                1880,
		SafetyScore:         4.5,
		SafetyLabel:         "Very safe",
		ReliabilityScore:    4.0,
		FrequencySummary:    "YRT 522 every ~20 min",
		PrimaryRouteSummary: "YRT 522 to Markham Campus",
		FallbackMinutes:     map[string]int{"keele": 52, "markham": 15, "glendon": 49},
		Coordinate:          coord(43.8612, -79.2234),
	},
	{
		ID:                  "11",
		Address:             "2737 Keele St, North York",
		AreaName:            "Downsview Park",
		Rent:                1590,
		SafetyScore:         3.8,
		SafetyLabel:         "Generally safe",
		ReliabilityScore:    4.1,
		FrequencySummary:    "TTC 41 every ~9 min",
		PrimaryRouteSummary: "TTC 41 to Pioneer Village Station",
		FallbackMinutes:     map[string]int{"keele": 16, "markham": 50, "glendon": 31},
		Coordinate:          coord(43.7332, -79.4856),
	},
	{
		// Unit posted without an address pin; never geocoded.
		ID:                  "12",
		Address:             "Near Finch West Station, North York",
		AreaName:            "Black Creek",
		Rent:                1450,
		SafetyScore:         3.7,
		SafetyLabel:         "Generally safe",
		ReliabilityScore:    3.6,
		FrequencySummary:    "TTC Line 6 every ~10 min",
		PrimaryRouteSummary: "Line 6 Finch West to Keele bus",
		FallbackMinutes:     map[string]int{"keele": 19, "markham": 54, "glendon": 36},
	},
}
