package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"ann"`
	Email     string    `json:"email" db:"email" example:"ann@example.com"`
	CreatedAt time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
