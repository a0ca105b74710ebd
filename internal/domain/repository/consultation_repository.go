package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Consultation, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Consultation, error)

	// CancelPending atomically cancels an owned consultation that is still
	// pending. Returns affected rows: 1 = cancelled, 0 = missing, not owned,
	// or already past pending.
	CancelPending(db *gorm.DB, id int64, patientID int64, reason string) (int64, error)

	// MaxSequenceForYear returns the highest sequence number issued for the
	// year, used to re-seed the sequence counter at startup.
	MaxSequenceForYear(db *gorm.DB, year int) (int64, error)

	CountByStatus(db *gorm.DB, patientID int64, status entity.ConsultationStatus) (int64, error)
}
