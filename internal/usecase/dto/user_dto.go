package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/domain"
)

// RegisterRequest - body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Location string `json:"location" validate:"required"`
}

// LoginRequest - body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest - body of PUT /users/:id
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// UserResponse - public view of a user (no password hash)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse - user plus signed access token
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
