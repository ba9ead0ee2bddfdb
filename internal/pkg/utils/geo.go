package utils

import (
	"math"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/pkg/errors"
)

// Distances are reported in miles throughout the API.
const earthRadiusMiles = 3959.0

// HaversineMiles computes the great-circle distance between two points in
// miles. Symmetric, and zero for identical points.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(toRad(lat1))*math.Cos(toRad(lat2))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// Midpoint computes the unweighted centroid of the locations, averaging
// latitude and longitude independently. The orchestrator guarantees at
// least two locations; the empty-input check here is a final guard.
func Midpoint(locations []domain.Location) (domain.Midpoint, error) {
	if len(locations) == 0 {
		return domain.Midpoint{}, errors.ErrInvalidInput.WithMessage("no locations provided for midpoint")
	}

	var sumLat, sumLon float64
	for _, loc := range locations {
		sumLat += loc.Lat
		sumLon += loc.Lon
	}

	n := float64(len(locations))
	return domain.Midpoint{
		Lat: sumLat / n,
		Lon: sumLon / n,
	}, nil
}

// ValidateCoordinates checks that the pair is a plausible lat/lon.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
