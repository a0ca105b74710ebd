package repository

import (
	"errors"
	"time"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type certificateRepository struct{}

func NewCertificateRepository() domainRepo.CertificateRepository {
	return &certificateRepository{}
}

func (r *certificateRepository) Create(db *gorm.DB, certificate *entity.MedicalCertificate) error {
	return db.Create(certificate).Error
}

func (r *certificateRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.MedicalCertificate, error) {
	var certificate entity.MedicalCertificate
	err := db.Preload("Patient.User").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.MedicalCertificate, error) {
	var certificates []entity.MedicalCertificate
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) FindByNumber(db *gorm.DB, number string) (*entity.MedicalCertificate, error) {
	var certificate entity.MedicalCertificate
	err := db.Preload("Patient.User").
		Where("number = ?", number).
		First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}

// MarkDownloaded performs the ready_for_download -> downloaded transition as
// a guarded UPDATE. A second call finds no matching row and is a no-op.
func (r *certificateRepository) MarkDownloaded(db *gorm.DB, id int64, patientID int64) (int64, error) {
	result := db.Model(&entity.MedicalCertificate{}).
		Where("id = ? AND patient_id = ? AND status = ?", id, patientID, entity.CertificateStatusReadyForDownload).
		Updates(map[string]interface{}{
			"status":        entity.CertificateStatusDownloaded,
			"downloaded_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *certificateRepository) MaxSequenceForYear(db *gorm.DB, year int) (int64, error) {
	var max int64
	err := db.Model(&entity.MedicalCertificate{}).
		Select("COALESCE(MAX(sequence_no), 0)").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Scan(&max).Error
	return max, err
}

func (r *certificateRepository) CountByStatus(db *gorm.DB, patientID int64, status entity.CertificateStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.MedicalCertificate{}).
		Where("patient_id = ? AND status = ?", patientID, status).
		Count(&count).Error
	return count, err
}
