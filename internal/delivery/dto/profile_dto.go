package dto

import "time"

// Request DTOs

type UpdateProfileRequest struct {
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address          string `json:"address" validate:"omitempty"`
	BarangayID       *int64 `json:"barangay_id" validate:"omitempty,min=1"`
	Allergies        string `json:"allergies" validate:"omitempty"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=5"`
	PhilHealthNumber string `json:"philhealth_number" validate:"omitempty,max=20"`
}

// Response DTOs

// ActivityLogResponse is one row of the user's own activity history.
type ActivityLogResponse struct {
	ID        int64                  `json:"id"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type PatientResponse struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Address          string    `json:"address,omitempty"`
	Barangay         string    `json:"barangay,omitempty"`
	BarangayID       *int64    `json:"barangay_id,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	PhilHealthNumber string    `json:"philhealth_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
