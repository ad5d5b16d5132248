package dto

import "github.com/yigit/student-api/internal/app/models"

// RegisterUserRequest represents user registration data
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,notblank" example:"ann"`
	Email    string `json:"email" binding:"required,notblank" example:"ann@example.com"`
}

// UserResponse wraps a newly registered user
type UserResponse struct {
	Message string       `json:"message" example:"user registered successfully"`
	User    *models.User `json:"user"`
}
