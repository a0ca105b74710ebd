package entity

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "pending"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusNoShow      AppointmentStatus = "no-show"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// AppointmentLocation identifies where the appointment takes place
type AppointmentLocation string

const (
	LocationRHU AppointmentLocation = "RHU"
	LocationBHS AppointmentLocation = "BHS"
)

// TimeUnassigned is the placeholder time meaning "admin will assign a time later".
const TimeUnassigned = "00:00:00"

// appointmentTransitions lists every allowed status transition.
// Anything not present here is rejected; no status ever moves backward.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:     {AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusNoShow, AppointmentStatusRescheduled},
	AppointmentStatusConfirmed:   {AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow, AppointmentStatusRescheduled},
	AppointmentStatusRescheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusNoShow},
}

// CanTransitionAppointment reports whether from -> to is an allowed transition.
func CanTransitionAppointment(from, to AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Appointment represents a patient booking at the RHU or a barangay health station
type Appointment struct {
	ID              int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int64               `gorm:"not null;index" json:"patient_id"`
	ServiceTypeID   int64               `gorm:"not null;index" json:"service_type_id"`
	Location        AppointmentLocation `gorm:"type:varchar(10);not null" json:"location"`
	BarangayID      *int64              `gorm:"index" json:"barangay_id,omitempty"`
	AppointmentDate time.Time           `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string              `gorm:"type:time;not null;default:'00:00:00'" json:"appointment_time"`
	Status          AppointmentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason          string              `gorm:"type:text" json:"reason,omitempty"`
	Notes           string              `gorm:"type:text" json:"notes,omitempty"`
	CancelReason    string              `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	ServiceType ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
	Barangay    *Barangay   `gorm:"foreignKey:BarangayID" json:"barangay,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DisplayID returns the human-facing appointment identifier.
func (a *Appointment) DisplayID() string {
	return fmt.Sprintf("APT-%06d", a.ID)
}

// IsTerminal reports whether the appointment can no longer change through the portal.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCancelled, AppointmentStatusNoShow, AppointmentStatusCompleted:
		return true
	}
	return false
}

// IsCancellable reports whether the status alone permits patient cancellation.
// The date check lives in the booking rules.
func (a *Appointment) IsCancellable() bool {
	switch a.Status {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// HasAssignedTime reports whether an admin has assigned a concrete time slot.
func (a *Appointment) HasAssignedTime() bool {
	return a.AppointmentTime != TimeUnassigned && a.AppointmentTime != ""
}
