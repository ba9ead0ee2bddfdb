package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/usecase"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) Geocode(ctx context.Context, postcode string) (*domain.Location, error) {
	args := m.Called(ctx, postcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// MockVenueIndexRepository is a mock of VenueIndexRepository
type MockVenueIndexRepository struct {
	mock.Mock
}

func (m *MockVenueIndexRepository) SearchNearby(ctx context.Context, q domain.VenueQuery) ([]domain.Venue, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func newVenueUseCase(geocoder *MockGeocoderRepository, index *MockVenueIndexRepository) *usecase.VenueSearchUseCase {
	return usecase.NewVenueSearchUseCase(geocoder, index, domain.NewDefaultVenueCatalog(), 10000, zap.NewNop())
}

func TestVenueSearchUseCase_SearchVenues(t *testing.T) {
	ctx := context.Background()

	t.Run("fewer than two postcodes is rejected", func(t *testing.T) {
		uc := newVenueUseCase(&MockGeocoderRepository{}, &MockVenueIndexRepository{})

		_, err := uc.SearchVenues(ctx, []string{"SW1A 1AA"}, domain.VenueCategoryPub)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("blank postcodes do not count towards the minimum", func(t *testing.T) {
		uc := newVenueUseCase(&MockGeocoderRepository{}, &MockVenueIndexRepository{})

		_, err := uc.SearchVenues(ctx, []string{"SW1A 1AA", "  ", ""}, domain.VenueCategoryPub)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("missing venue type is rejected", func(t *testing.T) {
		uc := newVenueUseCase(&MockGeocoderRepository{}, &MockVenueIndexRepository{})

		_, err := uc.SearchVenues(ctx, []string{"SW1A 1AA", "E1 6AN"}, "")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("computes midpoint and ranks venues by distance", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		uc := newVenueUseCase(geocoder, index)

		geocoder.On("Geocode", mock.Anything, "SW1A 1AA").
			Return(&domain.Location{Postcode: "SW1A 1AA", Lat: 51.0, Lon: 0.0}, nil)
		geocoder.On("Geocode", mock.Anything, "E1 6AN").
			Return(&domain.Location{Postcode: "E1 6AN", Lat: 53.0, Lon: 0.0}, nil)

		// Returned out of order on purpose
		index.On("SearchNearby", mock.Anything, mock.MatchedBy(func(q domain.VenueQuery) bool {
			return q.Lat == 52.0 && q.Lon == 0.0 && q.RadiusMeters == 10000 && q.Category == domain.VenueCategoryPub
		})).Return([]domain.Venue{
			{ID: 1, Name: "Far", Category: domain.VenueCategoryPub, Lat: 52.5, Lon: 0.0},
			{ID: 2, Name: "Near", Category: domain.VenueCategoryPub, Lat: 52.01, Lon: 0.0},
			{ID: 3, Name: "Middle", Category: domain.VenueCategoryPub, Lat: 52.2, Lon: 0.0},
		}, nil)

		result, err := uc.SearchVenues(ctx, []string{"SW1A 1AA", "E1 6AN"}, domain.VenueCategoryPub)
		require.NoError(t, err)

		assert.Equal(t, 52.0, result.Midpoint.Lat)
		assert.Equal(t, 0.0, result.Midpoint.Lon)
		assert.False(t, result.Fallback)

		require.Len(t, result.Venues, 3)
		assert.Equal(t, "Near", result.Venues[0].Name)
		assert.Equal(t, "Middle", result.Venues[1].Name)
		assert.Equal(t, "Far", result.Venues[2].Name)
		assert.True(t, result.Venues[0].DistanceMiles < result.Venues[1].DistanceMiles)
		assert.True(t, result.Venues[1].DistanceMiles < result.Venues[2].DistanceMiles)

		for _, v := range result.Venues {
			assert.GreaterOrEqual(t, v.Rating, 3.0)
			assert.Less(t, v.Rating, 5.0)
		}

		// Locations keep request order
		require.Len(t, result.Locations, 2)
		assert.Equal(t, "SW1A 1AA", result.Locations[0].Postcode)
		assert.Equal(t, "E1 6AN", result.Locations[1].Postcode)
		assert.InDelta(t, result.Locations[0].DistanceToMidpointMiles, result.Locations[1].DistanceToMidpointMiles, 1e-6)

		index.AssertExpectations(t)
	})

	t.Run("caps results at twenty venues", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		uc := newVenueUseCase(geocoder, index)

		geocoder.On("Geocode", mock.Anything, mock.Anything).
			Return(&domain.Location{Lat: 51.5, Lon: -0.1}, nil)

		many := make([]domain.Venue, 30)
		for i := range many {
			many[i] = domain.Venue{ID: int64(i), Name: "Venue", Lat: 51.5, Lon: -0.1}
		}
		index.On("SearchNearby", mock.Anything, mock.Anything).Return(many, nil)

		result, err := uc.SearchVenues(ctx, []string{"A", "B"}, domain.VenueCategoryCafe)
		require.NoError(t, err)
		assert.Len(t, result.Venues, 20)
	})

	t.Run("geocode failure fails the whole search", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		uc := newVenueUseCase(geocoder, index)

		geocoder.On("Geocode", mock.Anything, "SW1A 1AA").
			Return(&domain.Location{Postcode: "SW1A 1AA", Lat: 51.5, Lon: -0.1}, nil)
		geocoder.On("Geocode", mock.Anything, "BAD").
			Return(nil, errors.GeocodeFailed("BAD"))

		_, err := uc.SearchVenues(ctx, []string{"SW1A 1AA", "BAD"}, domain.VenueCategoryPub)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrGeocodeFailed)

		index.AssertNotCalled(t, "SearchNearby", mock.Anything, mock.Anything)
	})

	t.Run("venue index outage falls back to synthetic venues", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		uc := newVenueUseCase(geocoder, index)

		geocoder.On("Geocode", mock.Anything, "A").
			Return(&domain.Location{Postcode: "A", Lat: 51.0, Lon: 0.0}, nil)
		geocoder.On("Geocode", mock.Anything, "B").
			Return(&domain.Location{Postcode: "B", Lat: 52.0, Lon: 0.0}, nil)
		index.On("SearchNearby", mock.Anything, mock.Anything).
			Return(nil, stderrors.New("gateway timeout"))

		result, err := uc.SearchVenues(ctx, []string{"A", "B"}, domain.VenueCategoryPub)
		require.NoError(t, err)

		assert.True(t, result.Fallback)
		require.Len(t, result.Venues, 5)
		for _, v := range result.Venues {
			assert.NotEmpty(t, v.Name)
			assert.Equal(t, domain.VenueCategoryPub, v.Category)
			assert.InDelta(t, 51.5, v.Lat, 0.0100001)
			assert.InDelta(t, 0.0, v.Lon, 0.0100001)
			assert.GreaterOrEqual(t, v.Rating, 3.0)
			assert.Less(t, v.Rating, 5.0)
		}

		stats := uc.Stats()
		assert.Equal(t, int64(1), stats.FallbackUsed)
	})

	t.Run("unknown category falls back to the pub name table", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		uc := newVenueUseCase(geocoder, index)

		geocoder.On("Geocode", mock.Anything, mock.Anything).
			Return(&domain.Location{Lat: 51.5, Lon: -0.1}, nil)
		index.On("SearchNearby", mock.Anything, mock.Anything).
			Return(nil, stderrors.New("down"))

		result, err := uc.SearchVenues(ctx, []string{"A", "B"}, "bowling_alley")
		require.NoError(t, err)
		require.Len(t, result.Venues, 5)
		assert.Equal(t, "bowling_alley", result.Venues[0].Category)
	})
}
