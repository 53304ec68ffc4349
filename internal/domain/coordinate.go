package domain

// Coordinate is a WGS84 point. Listings, campuses and transit stops all use it.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// RouteGeometry holds GeoJSON MultiLineString coordinates exactly as the
// routing provider returns them: a sequence of polylines, each point as
// [lng, lat]. Reordering to [lat, lng] is a presentation concern.
type RouteGeometry [][][]float64
