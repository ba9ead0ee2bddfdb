package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"go.uber.org/zap"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/pkg/utils"
	"github.com/midway/midway-backend/internal/usecase/dto"
)

const maxVenues = 20

// VenueSearchUseCase drives the midpoint search: geocode every postcode,
// average the coordinates, query the venue index around the midpoint and
// rank the results by distance. When the venue index is unavailable it
// substitutes a synthetic result set instead of failing - a deliberate
// availability-over-accuracy trade-off so a third-party outage never
// surfaces to the end user.
type VenueSearchUseCase struct {
	geocoder   repository.GeocoderRepository
	venueIndex repository.VenueIndexRepository
	catalog    *domain.VenueCatalog
	radiusM    int
	logger     *zap.Logger

	searches      atomic.Int64
	fallbackUsed  atomic.Int64
	geocodeErrors atomic.Int64
}

func NewVenueSearchUseCase(
	geocoder repository.GeocoderRepository,
	venueIndex repository.VenueIndexRepository,
	catalog *domain.VenueCatalog,
	radiusM int,
	logger *zap.Logger,
) *VenueSearchUseCase {
	return &VenueSearchUseCase{
		geocoder:   geocoder,
		venueIndex: venueIndex,
		catalog:    catalog,
		radiusM:    radiusM,
		logger:     logger,
	}
}

// SearchVenues runs the full pipeline for a set of postcodes and a venue
// category. Locations in the response keep the order of the input
// postcodes. A single unresolvable postcode fails the whole search; there
// is no partial-success path.
func (uc *VenueSearchUseCase) SearchVenues(ctx context.Context, postcodes []string, venueType string) (*dto.VenueSearchResponse, error) {
	cleaned := make([]string, 0, len(postcodes))
	for _, p := range postcodes {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	if len(cleaned) < 2 {
		return nil, errors.ErrInvalidInput.WithMessage("Please provide at least 2 postcodes")
	}
	if venueType == "" {
		return nil, errors.ErrInvalidInput.WithMessage("Please provide a venue type")
	}

	uc.searches.Add(1)

	locations, err := uc.geocodeAll(ctx, cleaned)
	if err != nil {
		uc.geocodeErrors.Add(1)
		return nil, err
	}

	midpoint, err := utils.Midpoint(locations)
	if err != nil {
		return nil, err
	}

	venues, usedFallback := uc.findVenues(ctx, midpoint, venueType)

	// Annotate distances from the midpoint and rank ascending.
	for i := range venues {
		venues[i].DistanceMiles = utils.HaversineMiles(midpoint.Lat, midpoint.Lon, venues[i].Lat, venues[i].Lon)
	}
	sort.Slice(venues, func(i, j int) bool {
		return venues[i].DistanceMiles < venues[j].DistanceMiles
	})

	locationResults := make([]dto.LocationResult, len(locations))
	for i, loc := range locations {
		locationResults[i] = dto.LocationResult{
			Postcode:                loc.Postcode,
			Lat:                     loc.Lat,
			Lon:                     loc.Lon,
			DistanceToMidpointMiles: utils.HaversineMiles(loc.Lat, loc.Lon, midpoint.Lat, midpoint.Lon),
		}
	}

	uc.logger.Info("Venue search completed",
		zap.Int("postcodes", len(cleaned)),
		zap.String("venue_type", venueType),
		zap.Int("venues", len(venues)),
		zap.Bool("fallback", usedFallback))

	return &dto.VenueSearchResponse{
		Midpoint:  midpoint,
		Locations: locationResults,
		Venues:    venues,
		Fallback:  usedFallback,
	}, nil
}

// geocodeAll resolves every postcode concurrently. The calls have no
// ordering dependency, but the barrier matters: all in-flight lookups are
// joined before deciding success or failure, so a failing postcode never
// leaves abandoned connections behind.
func (uc *VenueSearchUseCase) geocodeAll(ctx context.Context, postcodes []string) ([]domain.Location, error) {
	locations := make([]domain.Location, len(postcodes))

	var g errgroup.Group
	for i, postcode := range postcodes {
		i, postcode := i, postcode
		g.Go(func() error {
			loc, err := uc.geocoder.Geocode(ctx, postcode)
			if err != nil {
				return err
			}
			locations[i] = *loc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Warn("Geocoding failed", zap.Error(err))
		return nil, err
	}

	return locations, nil
}

// findVenues queries the venue index, falling back to synthetic venues on
// any upstream failure. The fallback never propagates an error; it is
// counted and logged so operators can see outages the API hides.
func (uc *VenueSearchUseCase) findVenues(ctx context.Context, midpoint domain.Midpoint, venueType string) ([]domain.Venue, bool) {
	venues, err := uc.venueIndex.SearchNearby(ctx, domain.VenueQuery{
		Lat:          midpoint.Lat,
		Lon:          midpoint.Lon,
		RadiusMeters: uc.radiusM,
		Category:     venueType,
	})
	if err != nil {
		uc.fallbackUsed.Add(1)
		uc.logger.Warn("Venue index unavailable, using mock fallback",
			zap.String("venue_type", venueType),
			zap.Error(err))
		return uc.generateMockVenues(midpoint, venueType), true
	}

	if len(venues) > maxVenues {
		venues = venues[:maxVenues]
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range venues {
		venues[i].Rating = PlaceholderRating(rng)
	}

	return venues, false
}

// generateMockVenues synthesizes a plausible result set around the
// midpoint from the catalog's fixed name tables, jittering coordinates by
// up to ±0.01 degrees.
func (uc *VenueSearchUseCase) generateMockVenues(midpoint domain.Midpoint, venueType string) []domain.Venue {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	names := uc.catalog.MockNamesFor(venueType)
	venues := make([]domain.Venue, 0, len(names))
	for i, name := range names {
		venues = append(venues, domain.Venue{
			ID:       int64(i + 1),
			Name:     name,
			Category: venueType,
			Address:  fmt.Sprintf("%d High Street, London", rng.Intn(100)+1),
			Lat:      midpoint.Lat + (rng.Float64()-0.5)*0.02,
			Lon:      midpoint.Lon + (rng.Float64()-0.5)*0.02,
			Rating:   PlaceholderRating(rng),
		})
	}

	return venues
}

// Stats returns the pipeline counters for the stats endpoint.
func (uc *VenueSearchUseCase) Stats() dto.SearchStats {
	return dto.SearchStats{
		Searches:      uc.searches.Load(),
		FallbackUsed:  uc.fallbackUsed.Load(),
		GeocodeErrors: uc.geocodeErrors.Load(),
	}
}

// PlaceholderRating returns a rating in [3.0, 5.0). It is a stand-in for a
// ratings integration that was never built; swap a real source in here
// without touching the ranking logic.
func PlaceholderRating(rng *rand.Rand) float64 {
	return rng.Float64()*2 + 3
}
