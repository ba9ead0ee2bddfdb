package domain

import (
	"time"

	"github.com/google/uuid"
)

// User - a registered account with a saved default location string
// (free-text postcode used as the user's own input to venue search)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Location     string    `json:"location" db:"location"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
