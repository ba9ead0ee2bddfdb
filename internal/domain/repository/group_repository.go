package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/domain"
)

// GroupRepository - persistence for groups, memberships and meetups
type GroupRepository interface {
	// Create stores the group and adds the creator as an admin member in
	// the same transaction.
	Create(ctx context.Context, group *domain.Group) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)

	// ListMembers returns memberships joined with user rows, ordered by
	// joined_at so callers can rely on stable member ordering.
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error)
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*domain.GroupMember, error)
	AddMember(ctx context.Context, member *domain.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error

	CreateMeetup(ctx context.Context, meetup *domain.Meetup) error
	ListMeetups(ctx context.Context, groupID uuid.UUID) ([]domain.Meetup, error)
}
