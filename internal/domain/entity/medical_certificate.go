package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CertificateStatus represents the status of a medical certificate request.
// The progression is strictly forward: pending -> approved_for_checkup ->
// completed_checkup -> ready_for_download -> downloaded, with cancelled and
// expired as terminal exits.
type CertificateStatus string

const (
	CertificateStatusPending            CertificateStatus = "pending"
	CertificateStatusApprovedForCheckup CertificateStatus = "approved_for_checkup"
	CertificateStatusCompletedCheckup   CertificateStatus = "completed_checkup"
	CertificateStatusReadyForDownload   CertificateStatus = "ready_for_download"
	CertificateStatusDownloaded         CertificateStatus = "downloaded"
	CertificateStatusCancelled          CertificateStatus = "cancelled"
	CertificateStatusExpired            CertificateStatus = "expired"
)

var certificateTransitions = map[CertificateStatus][]CertificateStatus{
	CertificateStatusPending:            {CertificateStatusApprovedForCheckup, CertificateStatusCancelled, CertificateStatusExpired},
	CertificateStatusApprovedForCheckup: {CertificateStatusCompletedCheckup, CertificateStatusCancelled, CertificateStatusExpired},
	CertificateStatusCompletedCheckup:   {CertificateStatusReadyForDownload, CertificateStatusCancelled, CertificateStatusExpired},
	CertificateStatusReadyForDownload:   {CertificateStatusDownloaded, CertificateStatusExpired},
	CertificateStatusDownloaded:         {CertificateStatusExpired},
}

// CanTransitionCertificate reports whether from -> to is an allowed transition.
func CanTransitionCertificate(from, to CertificateStatus) bool {
	for _, next := range certificateTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MedicalCertificate represents a medical certificate request
type MedicalCertificate struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Number       string            `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`
	SequenceNo   int64             `gorm:"not null" json:"-"`
	PatientID    int64             `gorm:"not null;index" json:"patient_id"`
	Type         string            `gorm:"type:varchar(50);not null" json:"type"`
	Purpose      string            `gorm:"type:text;not null" json:"purpose"`
	Status       CertificateStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	Fee          decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	IssuedBy     string            `gorm:"type:varchar(255)" json:"issued_by,omitempty"`
	ValidFrom    *time.Time        `gorm:"type:date" json:"valid_from,omitempty"`
	ValidUntil   *time.Time        `gorm:"type:date" json:"valid_until,omitempty"`
	DownloadedAt *time.Time        `json:"downloaded_at,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalCertificate) TableName() string {
	return "medical_certificates"
}

// CertificateNumber formats the human-facing certificate number.
func CertificateNumber(year int, seq int64) string {
	return fmt.Sprintf("CERT-%d-%04d", year, seq)
}

// IsDownloadable reports whether the certificate document may be served.
func (c *MedicalCertificate) IsDownloadable() bool {
	return c.Status == CertificateStatusReadyForDownload || c.Status == CertificateStatusDownloaded
}

// IsExpired reports whether the validity window has lapsed. valid_until is a
// date, so the certificate stays valid through the end of that day.
func (c *MedicalCertificate) IsExpired(now time.Time) bool {
	if c.ValidUntil == nil {
		return false
	}
	return !now.Before(c.ValidUntil.AddDate(0, 0, 1))
}
