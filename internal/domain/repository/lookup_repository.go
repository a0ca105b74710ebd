package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type BarangayRepository interface {
	FindAllActive(db *gorm.DB) ([]entity.Barangay, error)
	FindByID(db *gorm.DB, id int64) (*entity.Barangay, error)
}

type ServiceTypeRepository interface {
	FindAllActive(db *gorm.DB) ([]entity.ServiceType, error)
	FindByID(db *gorm.DB, id int64) (*entity.ServiceType, error)
}
