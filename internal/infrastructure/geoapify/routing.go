package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/campus-housing-service/internal/config"
	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client вызывает Geoapify Routing API и Places API
type Client struct {
	httpClient     *http.Client
	routingBaseURL string
	placesBaseURL  string
	apiKey         string
	logger         *zap.Logger
}

// NewClient создает новый клиент для Geoapify API
func NewClient(cfg *config.GeoapifyConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		routingBaseURL: cfg.RoutingBaseURL,
		placesBaseURL:  cfg.PlacesBaseURL,
		apiKey:         cfg.APIKey,
		logger:         logger,
	}
}

// Wire format: GeoJSON FeatureCollection from the routing endpoint.
type routingResponse struct {
	Features []routingFeature `json:"features"`
}

type routingFeature struct {
	Geometry struct {
		Type        string               `json:"type"`
		Coordinates domain.RouteGeometry `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Mode string     `json:"mode"`
		Time float64    `json:"time"`
		Legs []routeLeg `json:"legs"`
	} `json:"properties"`
}

type routeLeg struct {
	Steps []routeStep `json:"steps"`
}

type routeStep struct {
	Instruction struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"instruction"`
}

// FetchRoute запрашивает один маршрут для указанного режима
func (c *Client) FetchRoute(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.TravelMode,
) (*domain.RouteResult, error) {
	if c.apiKey == "" {
		return nil, errors.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("waypoints", fmt.Sprintf("%f,%f|%f,%f",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng))
	params.Set("mode", string(mode))
	params.Set("details", "instruction_details")
	params.Set("apiKey", c.apiKey)

	reqURL := c.routingBaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Routing request failed",
			zap.String("mode", string(mode)),
			zap.Error(err))
		return nil, errors.ErrRouteUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Routing API returned non-OK status",
			zap.String("mode", string(mode)),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.ErrRouteUnavailable
	}

	var routingResp routingResponse
	if err := json.NewDecoder(resp.Body).Decode(&routingResp); err != nil {
		c.logger.Warn("Failed to decode routing response",
			zap.String("mode", string(mode)),
			zap.Error(err))
		return nil, errors.ErrMalformedResponse
	}

	if len(routingResp.Features) == 0 {
		c.logger.Warn("Routing response has no features",
			zap.String("mode", string(mode)))
		return nil, errors.ErrMalformedResponse
	}

	feature := routingResp.Features[0]
	if len(feature.Geometry.Coordinates) == 0 {
		c.logger.Warn("Routing response has empty geometry",
			zap.String("mode", string(mode)))
		return nil, errors.ErrMalformedResponse
	}

	seconds := int(math.Round(feature.Properties.Time))
	minutes := 0
	if seconds > 0 {
		minutes = int(math.Round(float64(seconds) / 60.0))
	}

	c.logger.Debug("Routing API call successful",
		zap.String("mode", string(mode)),
		zap.Int("duration_seconds", seconds))

	return &domain.RouteResult{
		DurationSeconds: seconds,
		DurationMinutes: minutes,
		TransitLabels:   extractTransitLabels(feature.Properties.Legs),
		// Coordinates stay [lng, lat] as the provider sent them.
		Geometry: feature.Geometry.Coordinates,
	}, nil
}

// Route пробует режим transit, затем один раз approximated_transit.
// A zero-duration transit response counts as a failed attempt: the provider
// reports 0 when it has no transit schedule for the pair, and the retry
// still yields 0 for a genuinely zero-length trip.
func (c *Client) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (*domain.RouteResult, error) {
	if c.apiKey == "" {
		return nil, errors.ErrMissingAPIKey
	}

	route, err := c.FetchRoute(ctx, origin, destination, domain.ModeTransit)
	if err == nil && route.DurationSeconds > 0 {
		return route, nil
	}

	c.logger.Debug("Transit mode unavailable, retrying with approximated mode",
		zap.Error(err))

	return c.FetchRoute(ctx, origin, destination, domain.ModeApproximatedTransit)
}
