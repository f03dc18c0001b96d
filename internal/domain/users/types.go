package users

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	QueryTimeoutDuration = time.Second * 5
)

const (
	RoleAdmin    = "ADMIN"
	RoleLandlord = "LANDLORD"
	RoleTenant   = "TENANT"
	RoleAgent    = "FIELD_AGENT"
)

type User struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Role                 string    `json:"role"`
	Image                *string   `json:"image"`
	PasswordHash         []byte    `json:"-"` // Hide hashed password
	RefreshToken         string    `json:"-"` // Sensitive data
	ResetPasswordToken   string    `json:"-"` // Sensitive data
	ResetPasswordExpires time.Time `json:"-"` // Internal use only
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
