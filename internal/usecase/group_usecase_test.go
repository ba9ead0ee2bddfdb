package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/usecase"
	"github.com/midway/midway-backend/internal/usecase/dto"
)

// MockGroupRepository is a mock of GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupMember), args.Error(1)
}

func (m *MockGroupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*domain.GroupMember, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMember), args.Error(1)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, member *domain.GroupMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) CreateMeetup(ctx context.Context, meetup *domain.Meetup) error {
	args := m.Called(ctx, meetup)
	return args.Error(0)
}

func (m *MockGroupRepository) ListMeetups(ctx context.Context, groupID uuid.UUID) ([]domain.Meetup, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Meetup), args.Error(1)
}

func member(groupID uuid.UUID, role, name, location string) domain.GroupMember {
	id := uuid.New()
	return domain.GroupMember{
		GroupID: groupID,
		UserID:  id,
		Role:    role,
		User:    &domain.User{ID: id, Name: name, Location: location},
	}
}

func TestGroupUseCase_AddMember(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	adminID := uuid.New()

	t.Run("admin adds a user by email", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		userRepo := &MockUserRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, userRepo, nil, zap.NewNop())

		newUser := &domain.User{ID: uuid.New(), Email: "new@example.com", Name: "New"}

		groupRepo.On("GetMember", mock.Anything, groupID, adminID).
			Return(&domain.GroupMember{GroupID: groupID, UserID: adminID, Role: domain.GroupRoleAdmin}, nil)
		userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(newUser, nil)
		groupRepo.On("AddMember", mock.Anything, mock.MatchedBy(func(m *domain.GroupMember) bool {
			return m.GroupID == groupID && m.UserID == newUser.ID && m.Role == domain.GroupRoleMember
		})).Return(nil)

		result, err := uc.AddMember(ctx, adminID, groupID, dto.AddMemberRequest{Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, newUser.ID, result.UserID)
		assert.Equal(t, domain.GroupRoleMember, result.Role)

		groupRepo.AssertExpectations(t)
	})

	t.Run("plain members cannot add", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		memberID := uuid.New()
		groupRepo.On("GetMember", mock.Anything, groupID, memberID).
			Return(&domain.GroupMember{GroupID: groupID, UserID: memberID, Role: domain.GroupRoleMember}, nil)

		_, err := uc.AddMember(ctx, memberID, groupID, dto.AddMemberRequest{Email: "new@example.com"})
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("non-members cannot add", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		outsider := uuid.New()
		groupRepo.On("GetMember", mock.Anything, groupID, outsider).Return(nil, nil)

		_, err := uc.AddMember(ctx, outsider, groupID, dto.AddMemberRequest{Email: "new@example.com"})
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})
}

func TestGroupUseCase_RemoveMember(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	t.Run("anyone may leave", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		memberID := uuid.New()
		groupRepo.On("GetMember", mock.Anything, groupID, memberID).
			Return(&domain.GroupMember{GroupID: groupID, UserID: memberID, Role: domain.GroupRoleMember}, nil)
		groupRepo.On("RemoveMember", mock.Anything, groupID, memberID).Return(nil)

		require.NoError(t, uc.RemoveMember(ctx, memberID, groupID, memberID))
	})

	t.Run("only admins remove others", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		memberID := uuid.New()
		otherID := uuid.New()
		groupRepo.On("GetMember", mock.Anything, groupID, memberID).
			Return(&domain.GroupMember{GroupID: groupID, UserID: memberID, Role: domain.GroupRoleMember}, nil)

		err := uc.RemoveMember(ctx, memberID, groupID, otherID)
		assert.ErrorIs(t, err, errors.ErrForbidden)
		groupRepo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGroupUseCase_SearchGroupVenues(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	t.Run("labels locations with member names in order", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		venueUC := newVenueUseCase(geocoder, index)
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, venueUC, zap.NewNop())

		alice := member(groupID, domain.GroupRoleAdmin, "Alice", "SW1A 1AA")
		bob := member(groupID, domain.GroupRoleMember, "Bob", "E1 6AN")
		noLocation := member(groupID, domain.GroupRoleMember, "Carol", "")

		groupRepo.On("GetMember", mock.Anything, groupID, alice.UserID).Return(&alice, nil)
		groupRepo.On("ListMembers", mock.Anything, groupID).
			Return([]domain.GroupMember{alice, bob, noLocation}, nil)

		geocoder.On("Geocode", mock.Anything, "SW1A 1AA").
			Return(&domain.Location{Postcode: "SW1A 1AA", Lat: 51.0, Lon: 0.0}, nil)
		geocoder.On("Geocode", mock.Anything, "E1 6AN").
			Return(&domain.Location{Postcode: "E1 6AN", Lat: 53.0, Lon: 0.0}, nil)
		index.On("SearchNearby", mock.Anything, mock.Anything).Return([]domain.Venue{}, nil)

		result, err := uc.SearchGroupVenues(ctx, alice.UserID, groupID, domain.VenueCategoryCafe)
		require.NoError(t, err)

		// Carol has no saved location and is skipped
		require.Len(t, result.Locations, 2)
		assert.Equal(t, "Alice", result.Locations[0].Label)
		assert.Equal(t, "Bob", result.Locations[1].Label)
	})

	t.Run("whitespace-only locations are skipped without shifting labels", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		geocoder := &MockGeocoderRepository{}
		index := &MockVenueIndexRepository{}
		venueUC := newVenueUseCase(geocoder, index)
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, venueUC, zap.NewNop())

		// Bob sits between two located members; his blanks-only location
		// must be skipped here, not silently dropped downstream where it
		// would shift Carol's label onto the wrong location.
		alice := member(groupID, domain.GroupRoleAdmin, "Alice", "SW1A 1AA")
		bob := member(groupID, domain.GroupRoleMember, "Bob", "   ")
		carol := member(groupID, domain.GroupRoleMember, "Carol", "E1 6AN")

		groupRepo.On("GetMember", mock.Anything, groupID, alice.UserID).Return(&alice, nil)
		groupRepo.On("ListMembers", mock.Anything, groupID).
			Return([]domain.GroupMember{alice, bob, carol}, nil)

		geocoder.On("Geocode", mock.Anything, "SW1A 1AA").
			Return(&domain.Location{Postcode: "SW1A 1AA", Lat: 51.0, Lon: 0.0}, nil)
		geocoder.On("Geocode", mock.Anything, "E1 6AN").
			Return(&domain.Location{Postcode: "E1 6AN", Lat: 53.0, Lon: 0.0}, nil)
		index.On("SearchNearby", mock.Anything, mock.Anything).Return([]domain.Venue{}, nil)

		result, err := uc.SearchGroupVenues(ctx, alice.UserID, groupID, domain.VenueCategoryPub)
		require.NoError(t, err)

		require.Len(t, result.Locations, 2)
		assert.Equal(t, "SW1A 1AA", result.Locations[0].Postcode)
		assert.Equal(t, "Alice", result.Locations[0].Label)
		assert.Equal(t, "E1 6AN", result.Locations[1].Postcode)
		assert.Equal(t, "Carol", result.Locations[1].Label)
	})

	t.Run("needs two members with saved locations", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		alice := member(groupID, domain.GroupRoleAdmin, "Alice", "SW1A 1AA")
		carol := member(groupID, domain.GroupRoleMember, "Carol", "")

		groupRepo.On("GetMember", mock.Anything, groupID, alice.UserID).Return(&alice, nil)
		groupRepo.On("ListMembers", mock.Anything, groupID).
			Return([]domain.GroupMember{alice, carol}, nil)

		_, err := uc.SearchGroupVenues(ctx, alice.UserID, groupID, domain.VenueCategoryCafe)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("members only", func(t *testing.T) {
		groupRepo := &MockGroupRepository{}
		uc := usecase.NewGroupUseCase(groupRepo, &MockUserRepository{}, nil, zap.NewNop())

		outsider := uuid.New()
		groupRepo.On("GetMember", mock.Anything, groupID, outsider).Return(nil, nil)

		_, err := uc.SearchGroupVenues(ctx, outsider, groupID, domain.VenueCategoryCafe)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})
}
