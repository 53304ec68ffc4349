package geoapify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campus-housing-service/internal/config"
	"github.com/campus-housing-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_FetchNearestStop(t *testing.T) {
	point := domain.Coordinate{Lat: 43.7612, Lng: -79.4801}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "public_transport.bus,public_transport", q.Get("categories"))
			assert.Equal(t, "circle:-79.480100,43.761200,800", q.Get("filter"))
			assert.Equal(t, "proximity:-79.480100,43.761200", q.Get("bias"))
			assert.Equal(t, "1", q.Get("limit"))

			fmt.Fprint(w, `{
				"type": "FeatureCollection",
				"features": [{
					"type": "Feature",
					"geometry": {"type": "Point", "coordinates": [-79.4795, 43.7610]},
					"properties": {
						"name": "Shoreham Dr at The Pond Rd",
						"distance": 120.5,
						"lat": 43.7610,
						"lon": -79.4795
					}
				}]
			}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.Equal(t, "Shoreham Dr at The Pond Rd", stop.Name)
		assert.Equal(t, 120.5, stop.DistanceMeters)
		assert.Equal(t, domain.Coordinate{Lat: 43.7610, Lng: -79.4795}, stop.Coordinate)
	})

	t.Run("name falls back to formatted then generic label", func(t *testing.T) {
		responses := []string{
			`{"features":[{"geometry":{"type":"Point","coordinates":[-79.4795,43.7610]},"properties":{"formatted":"Keele St, Toronto","distance":50}}]}`,
			`{"features":[{"geometry":{"type":"Point","coordinates":[-79.4795,43.7610]},"properties":{"distance":50}}]}`,
		}
		var call int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, responses[call])
			call++
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.Equal(t, "Keele St, Toronto", stop.Name)

		stop, err = client.FetchNearestStop(context.Background(), point, 800)
		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.Equal(t, "Bus stop", stop.Name)
	})

	t.Run("coordinate falls back to point geometry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"features":[{"geometry":{"type":"Point","coordinates":[-79.4795,43.7610]},"properties":{"name":"Stop","distance":10}}]}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.Equal(t, domain.Coordinate{Lat: 43.7610, Lng: -79.4795}, stop.Coordinate)
	})

	t.Run("missing distance is computed from coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"features":[{"geometry":{"type":"Point","coordinates":[-79.4795,43.7610]},"properties":{"name":"Stop"}}]}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		require.NoError(t, err)
		require.NotNil(t, stop)
		// ~53m between the query point and the stop.
		assert.InDelta(t, 53, stop.DistanceMeters, 5)
	})

	t.Run("missing api key returns nil without requests", func(t *testing.T) {
		client := NewClient(&config.GeoapifyConfig{RequestTimeout: 5}, zap.NewNop())

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		assert.NoError(t, err)
		assert.Nil(t, stop)
	})

	t.Run("non-OK status returns nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		assert.NoError(t, err)
		assert.Nil(t, stop)
	})

	t.Run("empty result set returns nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"FeatureCollection","features":[]}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		stop, err := client.FetchNearestStop(context.Background(), point, 800)
		assert.NoError(t, err)
		assert.Nil(t, stop)
	})
}
