package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
