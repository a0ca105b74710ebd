package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// RegisterPatientRequest is the front-desk patient registration payload.
type RegisterPatientRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FullName         string `json:"full_name" validate:"required,min=2"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"required,oneof=M F"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address          string `json:"address" validate:"omitempty"`
	BarangayID       *int64 `json:"barangay_id" validate:"omitempty,min=1"`
	Allergies        string `json:"allergies" validate:"omitempty"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=5"`
	PhilHealthNumber string `json:"philhealth_number" validate:"omitempty,max=20"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Role      string           `json:"role"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
