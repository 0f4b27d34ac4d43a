package dto

import (
	"time"
)

// Request DTOs

// SignupRequest is posted by /signup. Status selects the account role.
type SignupRequest struct {
	FirstName       string `form:"firstname" validate:"required"`
	LastName        string `form:"lastname" validate:"required"`
	Email           string `form:"email" validate:"required"`
	PhoneNumber     string `form:"phonenumber" validate:"required"`
	Gender          string `form:"gender" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
	Status          string `form:"status" validate:"required,oneof=admin doctor patient"`
}

// AdminSignupRequest is posted by /admin and /admin/doctors/new; the
// role is fixed by the route and gender may be left blank.
type AdminSignupRequest struct {
	FirstName       string `form:"firstname" validate:"required"`
	LastName        string `form:"lastname" validate:"required"`
	Email           string `form:"email" validate:"required"`
	PhoneNumber     string `form:"phonenumber" validate:"required"`
	Gender          string `form:"gender"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type ForgetPasswordRequest struct {
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm-password" validate:"required"`
}

// ProfileUpdateRequest overwrites the contact fields as posted. Password is
// only applied when it is non-empty and matches ConfirmPassword.
type ProfileUpdateRequest struct {
	FirstName       string `form:"firstname"`
	LastName        string `form:"lastname"`
	Email           string `form:"email"`
	PhoneNumber     string `form:"phonenumber"`
	Gender          string `form:"gender"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// Response DTOs

type UserResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phonenumber"`
	Gender      string    `json:"gender"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	Token     string
	Dashboard string
	Expiry    time.Duration
}
