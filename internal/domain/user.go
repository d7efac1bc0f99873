package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email    *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	// ProtocolsInitialized is set once the default protocol set has been
	// offered (or the user cleared everything), so defaults never respawn.
	ProtocolsInitialized bool      `gorm:"not null;default:false" json:"protocols_initialized"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location returns the user's home timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string  `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"operator@example.com"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}
