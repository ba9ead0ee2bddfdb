package repository

import (
	"context"

	"github.com/midway/midway-backend/internal/domain"
)

// VenueIndexRepository queries the external venue-tagging index for venues
// of a category around a point. Implementations return only venues with a
// name and resolvable coordinates; rating and distance annotation belong to
// the caller.
type VenueIndexRepository interface {
	SearchNearby(ctx context.Context, query domain.VenueQuery) ([]domain.Venue, error)
}
