package repository

import (
	"context"

	"github.com/midway/midway-backend/internal/domain"
)

// GeocoderRepository resolves free-text postcodes to coordinates via the
// external lookup service. Each call is a single network round trip: no
// caching, no retry.
type GeocoderRepository interface {
	Geocode(ctx context.Context, postcode string) (*domain.Location, error)
}
