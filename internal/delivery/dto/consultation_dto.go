package dto

import "time"

// Request DTOs

type RequestConsultationRequest struct {
	ChiefComplaint string `json:"chief_complaint" validate:"required,min=3"`
	Symptoms       string `json:"symptoms" validate:"omitempty"`
	History        string `json:"history" validate:"omitempty"`
	Priority       string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

type CancelConsultationRequest struct {
	Reason string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type ConsultationResponse struct {
	ID             int64     `json:"id"`
	Number         string    `json:"number"`
	Type           string    `json:"type"`
	ChiefComplaint string    `json:"chief_complaint"`
	Symptoms       string    `json:"symptoms,omitempty"`
	History        string    `json:"history,omitempty"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	MeetingLink    string    `json:"meeting_link,omitempty"`
	Cancellable    bool      `json:"cancellable"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
