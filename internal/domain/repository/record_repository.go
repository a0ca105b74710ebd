package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

// Health record repositories are read-only from the patient's perspective.

type LaboratoryResultRepository interface {
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.LaboratoryResult, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.LaboratoryResult, error)
}

type PrescriptionRepository interface {
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Prescription, error)
}

type ReferralRepository interface {
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Referral, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Referral, error)
}
