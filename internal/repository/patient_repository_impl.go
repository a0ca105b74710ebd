package repository

import (
	"errors"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("User").Preload("Barangay").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("User").Preload("Barangay").Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}
