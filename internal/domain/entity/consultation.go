package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus represents the status of a consultation request
type ConsultationStatus string

const (
	ConsultationStatusPending    ConsultationStatus = "pending"
	ConsultationStatusInProgress ConsultationStatus = "in_progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusCancelled  ConsultationStatus = "cancelled"
)

// ConsultationType distinguishes online requests from walk-ins
type ConsultationType string

const (
	ConsultationTypeOnline ConsultationType = "online"
	ConsultationTypeWalkIn ConsultationType = "walk_in"
)

// ConsultationPriority is the triage priority assigned at request time
type ConsultationPriority string

const (
	PriorityLow    ConsultationPriority = "low"
	PriorityMedium ConsultationPriority = "medium"
	PriorityHigh   ConsultationPriority = "high"
	PriorityUrgent ConsultationPriority = "urgent"
)

var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationStatusPending:    {ConsultationStatusInProgress, ConsultationStatusCancelled},
	ConsultationStatusInProgress: {ConsultationStatusCompleted, ConsultationStatusCancelled},
}

// CanTransitionConsultation reports whether from -> to is an allowed transition.
func CanTransitionConsultation(from, to ConsultationStatus) bool {
	for _, next := range consultationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Consultation represents an online consultation request
type Consultation struct {
	ID             int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Number         string               `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`
	SequenceNo     int64                `gorm:"not null" json:"-"`
	PatientID      int64                `gorm:"not null;index" json:"patient_id"`
	Type           ConsultationType     `gorm:"type:varchar(10);not null;default:'online'" json:"type"`
	ChiefComplaint string               `gorm:"type:text;not null" json:"chief_complaint"`
	Symptoms       string               `gorm:"type:text" json:"symptoms,omitempty"`
	History        string               `gorm:"type:text" json:"history,omitempty"`
	Priority       ConsultationPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status         ConsultationStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DoctorID       *uuid.UUID           `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	MeetingLink    string               `gorm:"type:text" json:"meeting_link,omitempty"`
	CancelReason   string               `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedAt      time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time            `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// ConsultationNumber formats the human-facing consultation number.
func ConsultationNumber(year int, seq int64) string {
	return fmt.Sprintf("CONS-%d-%04d", year, seq)
}

// IsPending checks if the consultation is still awaiting staff action
func (c *Consultation) IsPending() bool {
	return c.Status == ConsultationStatusPending
}
