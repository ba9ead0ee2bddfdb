package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group member roles
const (
	GroupRoleAdmin  = "admin"
	GroupRoleMember = "member"
)

// Group - a named set of users planning meetups together. The creator is
// always an admin member.
type Group struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatorID   uuid.UUID `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// GroupMember - membership of a user in a group.
type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id" db:"group_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`

	// User is populated by queries that join the users table. Member
	// ordering is stable (joined_at) so location and name slices derived
	// from a member list stay parallel.
	User *User `json:"user,omitempty" db:"-"`
}

// Meetup - a planned event for a group.
type Meetup struct {
	ID          uuid.UUID `json:"id" db:"id"`
	GroupID     uuid.UUID `json:"group_id" db:"group_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
