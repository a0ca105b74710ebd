package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type RequestCertificateRequest struct {
	Type    string `json:"type" validate:"required,min=2,max=50"`
	Purpose string `json:"purpose" validate:"required,min=3"`
}

// Response DTOs

type CertificateResponse struct {
	ID           int64           `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	Purpose      string          `json:"purpose"`
	Status       string          `json:"status"`
	Fee          decimal.Decimal `json:"fee"`
	IssuedBy     string          `json:"issued_by,omitempty"`
	ValidFrom    *time.Time      `json:"valid_from,omitempty"`
	ValidUntil   *time.Time      `json:"valid_until,omitempty"`
	Downloadable bool            `json:"downloadable"`
	DownloadedAt *time.Time      `json:"downloaded_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}

// CertificateVerificationResponse is deliberately minimal: it confirms the
// certificate on a public page without exposing clinical detail.
type CertificateVerificationResponse struct {
	Number      string     `json:"number"`
	Type        string     `json:"type"`
	PatientName string     `json:"patient_name"`
	IssuedBy    string     `json:"issued_by"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Expired     bool       `json:"expired"`
}
