package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/domain"
)

// FriendshipRepository - persistence for friend requests and friendships
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *domain.Friendship) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error)

	// FindBetween returns the friendship linking the two users in either
	// direction, or nil when none exists.
	FindBetween(ctx context.Context, a, b uuid.UUID) (*domain.Friendship, error)

	// ListFriends returns accepted friendships of the user (either
	// direction) joined with the counterpart user row.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.Friend, error)

	// ListIncoming returns friendships addressed to the user filtered by
	// the given statuses.
	ListIncoming(ctx context.Context, userID uuid.UUID, statuses []string) ([]domain.Friendship, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Friendship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
