package utils

import (
	"testing"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineMiles(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineMiles(51.5074, -0.1278, 51.5074, -0.1278))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineMiles(51.5074, -0.1278, 53.4808, -2.2426)
		d2 := HaversineMiles(53.4808, -2.2426, 51.5074, -0.1278)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("london to manchester", func(t *testing.T) {
		// Charing Cross to Manchester city centre, roughly 163 miles
		d := HaversineMiles(51.5074, -0.1278, 53.4808, -2.2426)
		assert.InDelta(t, 163.0, d, 2.0)
	})

	t.Run("short distances stay small", func(t *testing.T) {
		d := HaversineMiles(51.5074, -0.1278, 51.5080, -0.1280)
		assert.Less(t, d, 0.1)
		assert.Greater(t, d, 0.0)
	})
}

func TestMidpoint(t *testing.T) {
	t.Run("two points on the equator", func(t *testing.T) {
		mid, err := Midpoint([]domain.Location{
			{Postcode: "A", Lat: 0, Lon: 0},
			{Postcode: "B", Lat: 0, Lon: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, mid.Lat)
		assert.Equal(t, 1.0, mid.Lon)
	})

	t.Run("single point is its own midpoint", func(t *testing.T) {
		mid, err := Midpoint([]domain.Location{
			{Postcode: "A", Lat: 51.5, Lon: -0.12},
		})
		require.NoError(t, err)
		assert.Equal(t, 51.5, mid.Lat)
		assert.Equal(t, -0.12, mid.Lon)
	})

	t.Run("averages several points", func(t *testing.T) {
		mid, err := Midpoint([]domain.Location{
			{Lat: 50, Lon: -1},
			{Lat: 52, Lon: 0},
			{Lat: 54, Lon: 1},
		})
		require.NoError(t, err)
		assert.InDelta(t, 52.0, mid.Lat, 1e-9)
		assert.InDelta(t, 0.0, mid.Lon, 1e-9)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := Midpoint(nil)
		assert.Error(t, err)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(51.5, -0.12))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}
