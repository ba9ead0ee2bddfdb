package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/midway/midway-backend/internal/config"
	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	catalog    *domain.VenueCatalog
	logger     *zap.Logger
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

type element struct {
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *elementPoint     `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type elementPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewClient creates a client for an Overpass-style venue index.
func NewClient(cfg *config.VenueIndexConfig, catalog *domain.VenueCatalog, logger *zap.Logger) repository.VenueIndexRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		catalog: catalog,
		logger:  logger,
	}
}

// SearchNearby posts the category query and normalizes the returned
// elements. Entries without a name or resolvable coordinates are discarded
// here: distance ranking downstream is undefined without them.
func (c *client) SearchNearby(ctx context.Context, q domain.VenueQuery) ([]domain.Venue, error) {
	query := BuildQuery(c.catalog, q)

	c.logger.Debug("Querying venue index",
		zap.String("category", q.Category),
		zap.Int("radius_m", q.RadiusMeters),
		zap.Float64("lat", q.Lat),
		zap.Float64("lon", q.Lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("venue index error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var overpass overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpass); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	venues := make([]domain.Venue, 0, len(overpass.Elements))
	for _, el := range overpass.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}

		lat, lon, ok := el.coordinates()
		if !ok {
			continue
		}

		venues = append(venues, domain.Venue{
			ID:       el.ID,
			Name:     name,
			Category: q.Category,
			Address:  formatAddress(el.Tags),
			Lat:      lat,
			Lon:      lon,
			Phone:    optionalTag(el.Tags, "phone"),
			Website:  optionalTag(el.Tags, "website"),
		})
	}

	c.logger.Debug("Venue index returned",
		zap.Int("elements", len(overpass.Elements)),
		zap.Int("usable", len(venues)))

	return venues, nil
}

// coordinates returns the point coordinate of a node, or the computed
// center of a way/relation.
func (e *element) coordinates() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}

func formatAddress(tags map[string]string) string {
	parts := make([]string, 0, 4)
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:postcode"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}

	if len(parts) == 0 {
		return "Address not available"
	}
	return strings.Join(parts, ", ")
}

func optionalTag(tags map[string]string, key string) *string {
	if v, ok := tags[key]; ok && v != "" {
		return &v
	}
	return nil
}
