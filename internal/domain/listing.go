package domain

// Listing is the static record owned by the listing store. Immutable after
// load. FallbackMinutes keeps a precomputed commute estimate per campus id,
// used whenever the live travel data is unavailable. Coordinate is nil for
// listings that were never geocoded.
type Listing struct {
	ID                  string         `json:"id"`
	Address             string         `json:"address"`
	AreaName            string         `json:"area_name"`
	Rent                int            `json:"rent"`
	SafetyScore         float64        `json:"safety_score"`
	SafetyLabel         string         `json:"safety_label"`
	ReliabilityScore    float64        `json:"reliability_score"`
	FrequencySummary    string         `json:"frequency_summary"`
	PrimaryRouteSummary string         `json:"primary_route_summary"`
	FallbackMinutes     map[string]int `json:"fallback_minutes"`
	Coordinate          *Coordinate    `json:"coordinate,omitempty"`
}

// EnrichedListing is a Listing merged with its TravelData. MinutesTo never
// contains the unavailable sentinel: the merge layer substitutes the static
// fallback before the record leaves the usecase layer. Derived per request,
// never stored.
type EnrichedListing struct {
	Listing
	MinutesTo       map[string]int           `json:"minutes_to"`
	TransitLabelsTo map[string][]string      `json:"transit_labels_to"`
	RouteGeometryTo map[string]RouteGeometry `json:"route_geometry_to,omitempty"`
	NearestStop     *NearestStop             `json:"nearest_stop,omitempty"`
}
