package model

import (
	"time"

	"github.com/muhammadheryan/gadgetfix/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         constant.Role `db:"role" json:"role"`
	IsBlocked    bool          `db:"is_blocked" json:"isBlocked"`
	ProfileImage string        `db:"profile_image" json:"profileImage"`
	Address      string        `db:"address" json:"address"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time    `db:"updated_at" json:"updatedAt,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
	Role  constant.Role
}

// UserUpdate holds the columns to change; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Phone        *string
	Address      *string
	ProfileImage *string
	Role         *constant.Role
	IsBlocked    *bool
	PasswordHash *string
}

// Actor is the verified identity performing an operation.
type Actor struct {
	ID   uint64        `json:"id"`
	Role constant.Role `json:"role"`
}

// IsAdmin reports whether the actor holds the administrator role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == constant.RoleAdmin
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Email    string `json:"email" validate:"required"` // email or phone
	Password string `json:"password" validate:"required"`
}

// UserSummary is the public part of an account returned after auth calls.
type UserSummary struct {
	ID    uint64        `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
}

// AuthResponse is returned by register and login; Token is sent as a cookie.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"-"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Phone        *string `json:"phone" validate:"omitempty,min=1"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profileImage"`
}

// UpdateUserRequest is the administrator patch for an account.
type UpdateUserRequest struct {
	Role      *constant.Role `json:"role" validate:"omitempty,role"`
	IsBlocked *bool          `json:"isBlocked"`
	Name      *string        `json:"name" validate:"omitempty,min=1"`
	Phone     *string        `json:"phone" validate:"omitempty,min=1"`
	Address   *string        `json:"address"`
}

type UserResponse struct {
	Message string      `json:"message,omitempty"`
	User    *UserEntity `json:"user"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
