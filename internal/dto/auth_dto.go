package dto

import (
	"time"

	"github.com/google/uuid"

	"ciao-api/internal/domain"
)

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email" example:"mario@example.com"`
	Name     string          `json:"name" binding:"required,min=1,max=100" example:"Mario Rossi"`
	Password string          `json:"password" binding:"required,min=8,max=72"`
	Role     domain.UserRole `json:"role" binding:"required" example:"student"`
}

// RegisterResponse carries the created user and the verification token.
// Email delivery is out of scope, so the token is returned directly.
type RegisterResponse struct {
	User              UserResponse `json:"user"`
	VerificationToken string       `json:"verificationToken"`
	TokenExpiresAt    time.Time    `json:"tokenExpiresAt"`
}

// VerifyEmailRequest represents an email verification attempt
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the authenticated user
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UpdateUserRequest represents a profile update
type UpdateUserRequest struct {
	Name *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Role *domain.UserRole `json:"role,omitempty"`
}

// UserResponse represents user information returned to clients
type UserResponse struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Role          domain.UserRole `json:"role"`
	EmailVerified bool            `json:"emailVerified"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain user to its response DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		EmailVerified: user.EmailVerifiedAt != nil,
		CreatedAt:     user.CreatedAt,
	}
}
