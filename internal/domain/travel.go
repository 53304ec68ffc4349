package domain

// UnavailableMinutes is the sentinel stored in TravelData when the routing
// provider could not produce a duration for a campus. It never reaches the
// merged listing: the merge layer swaps it for the listing's static fallback.
const UnavailableMinutes = 999

// TravelMode is the routing profile requested from the provider.
type TravelMode string

const (
	ModeTransit             TravelMode = "transit"
	ModeApproximatedTransit TravelMode = "approximated_transit"
)

// RouteResult is one successful routing response for an (origin, destination,
// mode) triple. Immutable once constructed.
type RouteResult struct {
	DurationSeconds int           `json:"duration_seconds"`
	DurationMinutes int           `json:"duration_minutes"`
	TransitLabels   []string      `json:"transit_labels"`
	Geometry        RouteGeometry `json:"geometry,omitempty"`
}

// NearestStop is the closest public transit stop to a listing.
type NearestStop struct {
	Name           string     `json:"name"`
	Coordinate     Coordinate `json:"coordinate"`
	DistanceMeters float64    `json:"distance_meters"`
}

// CampusTravel holds the live travel metrics from one listing to one campus.
// Minutes is UnavailableMinutes when the route could not be computed.
type CampusTravel struct {
	Minutes       int           `json:"minutes"`
	TransitLabels []string      `json:"transit_labels"`
	Geometry      RouteGeometry `json:"route_geometry,omitempty"`
}

// TravelData is the aggregate travel record for one listing: one CampusTravel
// per configured campus plus the nearest stop, if any. Every configured campus
// id is always present as a key, so absence of live data is representable
// without being a crash.
type TravelData struct {
	Campuses    map[string]CampusTravel `json:"campuses"`
	NearestStop *NearestStop            `json:"nearest_stop,omitempty"`
}

// Unavailable reports whether the travel record carries no live duration for
// the given campus.
func (t *TravelData) Unavailable(campusID string) bool {
	ct, ok := t.Campuses[campusID]
	return !ok || ct.Minutes == UnavailableMinutes
}
