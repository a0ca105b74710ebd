package entity

import "time"

// ReferralStatus represents the status of a referral to another facility.
// Read-only from the patient's perspective; transitions are staff-driven.
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusAccepted  ReferralStatus = "accepted"
	ReferralStatusCompleted ReferralStatus = "completed"
	ReferralStatusCancelled ReferralStatus = "cancelled"
)

// Referral represents a referral of the patient to another facility
type Referral struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int64          `gorm:"not null;index" json:"patient_id"`
	ReferredTo   string         `gorm:"type:varchar(255);not null" json:"referred_to"`
	Reason       string         `gorm:"type:text;not null" json:"reason"`
	Status       ReferralStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReferralDate time.Time      `gorm:"type:date;not null" json:"referral_date"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Referral) TableName() string {
	return "referrals"
}
