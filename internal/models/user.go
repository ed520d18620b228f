package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a minimal account row. Mood entries reference it by id only.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}
