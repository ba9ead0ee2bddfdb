package postcodes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/midway/midway-backend/internal/config"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(server *httptest.Server) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.GeocoderConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, logger).(*client)
}

func TestClient_Geocode(t *testing.T) {
	t.Run("resolves a postcode and strips spaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/postcodes/SW1A1AA", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": 200, "result": {"latitude": 51.501009, "longitude": -0.141588}}`))
		}))
		defer server.Close()

		loc, err := newTestClient(server).Geocode(context.Background(), "SW1A 1AA")
		require.NoError(t, err)
		assert.Equal(t, "SW1A 1AA", loc.Postcode)
		assert.Equal(t, 51.501009, loc.Lat)
		assert.Equal(t, -0.141588, loc.Lon)
	})

	t.Run("unknown postcode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status": 404, "error": "Postcode not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Geocode(context.Background(), "ZZ99 9ZZ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrGeocodeFailed)
	})

	t.Run("body-level error status with HTTP 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": 404}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Geocode(context.Background(), "ZZ99 9ZZ")
		assert.ErrorIs(t, err, errors.ErrGeocodeFailed)
	})

	t.Run("empty postcode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		_, err := newTestClient(server).Geocode(context.Background(), "   ")
		assert.ErrorIs(t, err, errors.ErrGeocodeFailed)
	})

	t.Run("unreachable service", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		_, err := newTestClient(server).Geocode(context.Background(), "SW1A 1AA")
		assert.ErrorIs(t, err, errors.ErrGeocodeFailed)
	})
}
