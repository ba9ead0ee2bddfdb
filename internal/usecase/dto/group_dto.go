package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/domain"
)

// CreateGroupRequest - body of POST /groups
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// AddMemberRequest - body of POST /groups/:id/members
type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateMeetupRequest - body of POST /groups/:id/meetups
type CreateMeetupRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location"`
}

// GroupVenueSearchRequest - body of POST /groups/:id/venues/search
type GroupVenueSearchRequest struct {
	VenueType string `json:"venue_type" validate:"required"`
}

// GroupMemberResponse - membership with the joined user
type GroupMemberResponse struct {
	UserID   uuid.UUID    `json:"user_id"`
	Role     string       `json:"role"`
	JoinedAt time.Time    `json:"joined_at"`
	User     UserResponse `json:"user"`
}

// GroupResponse - group with its members (member order is stable)
type GroupResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	CreatorID   uuid.UUID             `json:"creator_id"`
	CreatedAt   time.Time             `json:"created_at"`
	Members     []GroupMemberResponse `json:"members,omitempty"`
	MemberCount int                   `json:"member_count"`
}

func ToGroupMemberResponse(m domain.GroupMember) GroupMemberResponse {
	resp := GroupMemberResponse{
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
	if m.User != nil {
		resp.User = ToUserResponse(m.User)
	}
	return resp
}
