package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the account type a user registered as
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleFreelancer UserRole = "freelancer"
)

// IsValid reports whether the role is one of the known account types
func (r UserRole) IsValid() bool {
	return r == UserRoleStudent || r == UserRoleFreelancer
}

// User represents a registered account
type User struct {
	BaseModel
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash    string     `gorm:"type:varchar(255);not null" json:"-"`
	Role            UserRole   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	EmailVerifiedAt *time.Time `gorm:"type:timestamp" json:"emailVerifiedAt,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// VerificationToken is a single-use email verification token.
// At most one live token exists per email: issuing a new one rotates the old.
type VerificationToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"not null;index:idx_verification_tokens_email" json:"email"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for VerificationToken
func (VerificationToken) TableName() string {
	return "verification_tokens"
}
