package repository

import (
	"errors"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type barangayRepository struct{}

func NewBarangayRepository() domainRepo.BarangayRepository {
	return &barangayRepository{}
}

func (r *barangayRepository) FindAllActive(db *gorm.DB) ([]entity.Barangay, error) {
	var barangays []entity.Barangay
	err := db.Where("is_active = true").Order("name ASC").Find(&barangays).Error
	if err != nil {
		return nil, err
	}
	return barangays, nil
}

func (r *barangayRepository) FindByID(db *gorm.DB, id int64) (*entity.Barangay, error) {
	var barangay entity.Barangay
	err := db.Where("id = ?", id).First(&barangay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &barangay, nil
}

type serviceTypeRepository struct{}

func NewServiceTypeRepository() domainRepo.ServiceTypeRepository {
	return &serviceTypeRepository{}
}

func (r *serviceTypeRepository) FindAllActive(db *gorm.DB) ([]entity.ServiceType, error) {
	var serviceTypes []entity.ServiceType
	err := db.Where("is_active = true").Order("name ASC").Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (r *serviceTypeRepository) FindByID(db *gorm.DB, id int64) (*entity.ServiceType, error) {
	var serviceType entity.ServiceType
	err := db.Where("id = ?", id).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}
