package dto

import "github.com/midway/midway-backend/internal/domain"

// VenueSearchRequest - body of POST /venues/search
type VenueSearchRequest struct {
	Postcodes []string `json:"postcodes" validate:"required,min=2,dive,required"`
	VenueType string   `json:"venue_type" validate:"required"`
}

// LocationResult is an input location annotated with its distance to the
// midpoint. Results keep the order of the request's postcodes.
type LocationResult struct {
	Postcode string  `json:"postcode"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`

	// Label carries the member name when the search came from a group.
	Label string `json:"label,omitempty"`

	DistanceToMidpointMiles float64 `json:"distance_to_midpoint_miles"`
}

// VenueSearchResponse - midpoint, per-location distances and venues ranked
// ascending by distance from the midpoint (at most 20).
type VenueSearchResponse struct {
	Midpoint  domain.Midpoint  `json:"midpoint"`
	Locations []LocationResult `json:"locations"`
	Venues    []domain.Venue   `json:"venues"`

	// Fallback is true when the venue index was unavailable and the
	// venues are synthetic.
	Fallback bool `json:"fallback,omitempty"`
}

// SearchStats - operator-facing counters for the venue search pipeline
type SearchStats struct {
	Searches      int64 `json:"searches"`
	FallbackUsed  int64 `json:"fallback_used"`
	GeocodeErrors int64 `json:"geocode_errors"`
}
