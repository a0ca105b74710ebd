package repository

import (
	"errors"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type laboratoryResultRepository struct{}

func NewLaboratoryResultRepository() domainRepo.LaboratoryResultRepository {
	return &laboratoryResultRepository{}
}

func (r *laboratoryResultRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.LaboratoryResult, error) {
	var result entity.LaboratoryResult
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *laboratoryResultRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.LaboratoryResult, error) {
	var results []entity.LaboratoryResult
	err := db.Where("patient_id = ?", patientID).
		Order("test_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Items").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Items").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Referral, error) {
	var referral entity.Referral
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := db.Where("patient_id = ?", patientID).
		Order("referral_date DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}
