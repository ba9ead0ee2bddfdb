package postcodes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/midway/midway-backend/internal/config"
	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type lookupResponse struct {
	Status int `json:"status"`
	Result struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"result"`
}

// NewClient creates a client for a postcodes.io-style lookup service.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Geocode resolves a postcode to coordinates. Internal whitespace is
// stripped before lookup. Every failure mode - unreachable service,
// non-200 status, unresolvable code - surfaces as GEOCODE_FAILED carrying
// the original query string; there is no retry and no caching.
func (c *client) Geocode(ctx context.Context, postcode string) (*domain.Location, error) {
	clean := strings.ReplaceAll(postcode, " ", "")
	if clean == "" {
		return nil, errors.GeocodeFailed(postcode)
	}

	url := fmt.Sprintf("%s/postcodes/%s", c.baseURL, clean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create geocode request", zap.String("postcode", postcode), zap.Error(err))
		return nil, errors.GeocodeFailed(postcode)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Geocode request failed", zap.String("postcode", postcode), zap.Error(err))
		return nil, errors.GeocodeFailed(postcode)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoder returned non-200",
			zap.String("postcode", postcode),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.GeocodeFailed(postcode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		c.logger.Error("Failed to decode geocoder response", zap.String("postcode", postcode), zap.Error(err))
		return nil, errors.GeocodeFailed(postcode)
	}

	if lookup.Status != http.StatusOK {
		return nil, errors.GeocodeFailed(postcode)
	}

	c.logger.Debug("Postcode geocoded",
		zap.String("postcode", postcode),
		zap.Float64("lat", lookup.Result.Latitude),
		zap.Float64("lon", lookup.Result.Longitude))

	return &domain.Location{
		Postcode: postcode,
		Lat:      lookup.Result.Latitude,
		Lon:      lookup.Result.Longitude,
	}, nil
}
