package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data
type Patient struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"type:char(1);not null" json:"gender"`
	PhoneNumber      string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	BarangayID       *int64    `gorm:"index" json:"barangay_id,omitempty"`
	Allergies        string    `gorm:"type:text" json:"allergies,omitempty"`
	BloodType        string    `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	PhilHealthNumber string    `gorm:"type:varchar(20);index" json:"philhealth_number,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Barangay     *Barangay     `gorm:"foreignKey:BarangayID" json:"barangay,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
