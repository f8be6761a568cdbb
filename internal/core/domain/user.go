package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       int
	UUID     uuid.UUID
	Name     string `validate:"required,min=2,max=30"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required"`

	// IsDeleted marks the account as soft deleted. No endpoint flips it yet,
	// every lookup still filters on it.
	IsDeleted  bool
	IsVerified bool

	// Scratch fields for the verification and reset flows, cleared after use.
	OTP                *int
	OTPExpiresAt       *time.Time
	ResetPasswordToken *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the account can log in and own todos.
func (u *User) IsActive() bool {
	return !u.IsDeleted && u.IsVerified
}

func (u *User) OTPExpired(now time.Time) bool {
	return u.OTPExpiresAt == nil || now.After(*u.OTPExpiresAt)
}
