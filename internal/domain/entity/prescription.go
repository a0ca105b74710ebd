package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrescriptionStatus represents the dispensing status of a prescription.
// Read-only from the patient's perspective; transitions are pharmacy-driven.
type PrescriptionStatus string

const (
	PrescriptionStatusPending            PrescriptionStatus = "pending"
	PrescriptionStatusPartiallyDispensed PrescriptionStatus = "partially_dispensed"
	PrescriptionStatusFullyDispensed     PrescriptionStatus = "fully_dispensed"
	PrescriptionStatusCancelled          PrescriptionStatus = "cancelled"
)

// Prescription represents a doctor's prescription for a patient
type Prescription struct {
	ID           int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int64              `gorm:"not null;index" json:"patient_id"`
	PrescribedBy string             `gorm:"type:varchar(255)" json:"prescribed_by,omitempty"`
	Diagnosis    string             `gorm:"type:text" json:"diagnosis,omitempty"`
	Status       PrescriptionStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient            `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionItem represents a single medication line on a prescription
type PrescriptionItem struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID int64           `gorm:"not null;index" json:"prescription_id"`
	Medication     string          `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage         string          `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	QtyDispensed   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"qty_dispensed"`
	Instructions   string          `gorm:"type:text" json:"instructions,omitempty"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}
