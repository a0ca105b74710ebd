package repository

import (
	"time"

	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

// StatusCount is one row of a per-status aggregate query.
type StatusCount struct {
	Status string
	Count  int64
}

// AppointmentRepository is the data access layer for appointments. Finders on
// patient-owned rows always take the owning patient ID so the ownership
// predicate cannot be forgotten by a caller.
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	FindUpcomingByPatient(db *gorm.DB, patientID int64, from time.Time, limit int) ([]entity.Appointment, error)

	// CountActiveOnDate counts the patient's non-terminal appointments on a
	// calendar date (one-per-day rule).
	CountActiveOnDate(db *gorm.DB, patientID int64, date time.Time) (int64, error)

	// CountBySlot counts non-cancelled, non-no-show appointments sharing the
	// exact (date, time, location) triple (slot capacity rule).
	CountBySlot(db *gorm.DB, date time.Time, timeOfDay string, location entity.AppointmentLocation) (int64, error)

	// Cancel atomically cancels an owned, still-open appointment. Returns
	// affected rows: 1 = cancelled, 0 = missing, not owned, or not open.
	Cancel(db *gorm.DB, id int64, patientID int64, reason string) (int64, error)

	CountByStatus(db *gorm.DB, patientID int64) ([]StatusCount, error)
}
