package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	ServiceTypeID   int64  `json:"service_type_id" validate:"required,min=1"`
	Location        string `json:"location" validate:"required,oneof=RHU BHS"`
	BarangayID      *int64 `json:"barangay_id" validate:"omitempty,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"omitempty"` // Format: HH:MM:SS, 00:00:00 = admin assigns
	Reason          string `json:"reason" validate:"omitempty"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	DisplayID       string    `json:"display_id"`
	ServiceType     string    `json:"service_type"`
	Location        string    `json:"location"`
	Barangay        string    `json:"barangay,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CancelReason    string    `json:"cancel_reason,omitempty"`
	Cancellable     bool      `json:"cancellable"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type BarangayResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ServiceTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
