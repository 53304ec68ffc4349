package errors

import "net/http"

var (
	// ErrMissingAPIKey - credential for the routing/places provider is not
	// configured. Callers degrade to sentinel values, the user never sees it.
	ErrMissingAPIKey = New(
		"CONFIGURATION_ERROR",
		"Geoapify API key is not configured",
		http.StatusServiceUnavailable,
	)

	// ErrRouteUnavailable - provider could not compute a route for one
	// (origin, destination, mode) triple.
	ErrRouteUnavailable = New(
		"ROUTE_UNAVAILABLE",
		"Route could not be computed",
		http.StatusBadGateway,
	)

	// ErrMalformedResponse - provider answered with an unexpected shape.
	// Treated the same as ROUTE_UNAVAILABLE by callers.
	ErrMalformedResponse = New(
		"MALFORMED_RESPONSE",
		"Unexpected response from routing provider",
		http.StatusBadGateway,
	)

	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrInvalidCampus = New(
		"INVALID_CAMPUS",
		"Unknown campus",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
