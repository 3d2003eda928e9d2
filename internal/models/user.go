package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the dashboard.
// PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex;column:email" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:text;not null;column:password_hash"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
}

// NewUser creates a new User with generated UUID and timestamp
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
