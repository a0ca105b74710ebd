package entity

import "time"

// LabResultStatus represents the status of a laboratory result.
// Read-only from the patient's perspective; transitions are staff-driven.
type LabResultStatus string

const (
	LabResultStatusPending    LabResultStatus = "pending"
	LabResultStatusProcessing LabResultStatus = "processing"
	LabResultStatusCompleted  LabResultStatus = "completed"
	LabResultStatusCancelled  LabResultStatus = "cancelled"
)

// LaboratoryResult represents a lab test and its outcome
type LaboratoryResult struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  int64           `gorm:"not null;index" json:"patient_id"`
	TestName   string          `gorm:"type:varchar(100);not null" json:"test_name"`
	TestDate   time.Time       `gorm:"type:date;not null" json:"test_date"`
	Status     LabResultStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Result     string          `gorm:"type:text" json:"result,omitempty"`
	Remarks    string          `gorm:"type:text" json:"remarks,omitempty"`
	ReleasedAt *time.Time      `json:"released_at,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (LaboratoryResult) TableName() string {
	return "laboratory_results"
}
