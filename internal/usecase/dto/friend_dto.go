package dto

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestInput - body of POST /friends/request
type FriendRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// FriendRespondInput - body of PUT /friends/request/:id
type FriendRespondInput struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// FriendshipResponse - a friend request with the counterpart resolved
type FriendshipResponse struct {
	ID         uuid.UUID    `json:"id"`
	SenderID   uuid.UUID    `json:"sender_id"`
	ReceiverID uuid.UUID    `json:"receiver_id"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	Sender     *UserResponse `json:"sender,omitempty"`
	Receiver   *UserResponse `json:"receiver,omitempty"`
}

// FriendResponse - one entry of GET /friends/list
type FriendResponse struct {
	FriendshipID uuid.UUID    `json:"friendship_id"`
	Friend       UserResponse `json:"friend"`
	CreatedAt    time.Time    `json:"created_at"`
}
