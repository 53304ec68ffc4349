package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// defaultStopName is used when the provider returns a stop without a name.
const defaultStopName = "Bus stop"

type placesResponse struct {
	Features []placeFeature `json:"features"`
}

type placeFeature struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Name      string   `json:"name"`
		Formatted string   `json:"formatted"`
		Distance  float64  `json:"distance"`
		Lat       *float64 `json:"lat"`
		Lon       *float64 `json:"lon"`
	} `json:"properties"`
}

// FetchNearestStop ищет ближайшую остановку транспорта вокруг точки.
// Absence of a stop is a normal outcome: missing credential, provider errors
// and empty result sets all return (nil, nil).
func (c *Client) FetchNearestStop(
	ctx context.Context,
	point domain.Coordinate,
	radiusMeters float64,
) (*domain.NearestStop, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("categories", "public_transport.bus,public_transport")
	params.Set("filter", fmt.Sprintf("circle:%f,%f,%.0f", point.Lng, point.Lat, radiusMeters))
	params.Set("bias", fmt.Sprintf("proximity:%f,%f", point.Lng, point.Lat))
	params.Set("limit", "1")
	params.Set("apiKey", c.apiKey)

	reqURL := c.placesBaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Places request failed", zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Places API returned non-OK status",
			zap.Int("status_code", resp.StatusCode))
		return nil, nil
	}

	var placesResp placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&placesResp); err != nil {
		c.logger.Warn("Failed to decode places response", zap.Error(err))
		return nil, nil
	}

	if len(placesResp.Features) == 0 {
		return nil, nil
	}

	feature := placesResp.Features[0]
	props := feature.Properties

	name := props.Name
	if name == "" {
		name = props.Formatted
	}
	if name == "" {
		name = defaultStopName
	}

	stop := &domain.NearestStop{
		Name:           name,
		DistanceMeters: props.Distance,
	}

	// Prefer the property coordinates, fall back to the point geometry.
	switch {
	case props.Lat != nil && props.Lon != nil:
		stop.Coordinate = domain.Coordinate{Lat: *props.Lat, Lng: *props.Lon}
	case len(feature.Geometry.Coordinates) >= 2:
		stop.Coordinate = domain.Coordinate{
			Lat: feature.Geometry.Coordinates[1],
			Lng: feature.Geometry.Coordinates[0],
		}
	}

	// Some responses omit the distance property.
	if stop.DistanceMeters == 0 {
		stop.DistanceMeters = utils.HaversineDistance(
			point.Lat, point.Lng, stop.Coordinate.Lat, stop.Coordinate.Lng)
	}

	return stop, nil
}
