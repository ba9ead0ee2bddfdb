package domain

import (
	"time"

	"github.com/google/uuid"
)

// Friendship statuses
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusRejected = "rejected"
)

// Friendship - a friend request between two users. The sender creates it
// as pending; only the receiver may accept or reject it.
type Friendship struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id" db:"receiver_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Involves reports whether the given user is a party to the friendship.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.SenderID == userID || f.ReceiverID == userID
}

// CounterpartID returns the other party of the friendship.
func (f *Friendship) CounterpartID(userID uuid.UUID) uuid.UUID {
	if f.SenderID == userID {
		return f.ReceiverID
	}
	return f.SenderID
}

// Friend - an accepted friendship joined with the counterpart's user row.
type Friend struct {
	FriendshipID uuid.UUID `json:"friendship_id"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
}
