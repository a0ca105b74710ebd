package repository

import (
	"errors"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Doctor").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// CancelPending guards the pending-only rule in the UPDATE itself: a raced
// staff approval or a double-cancel reports zero affected rows.
func (r *consultationRepository) CancelPending(db *gorm.DB, id int64, patientID int64, reason string) (int64, error) {
	result := db.Model(&entity.Consultation{}).
		Where("id = ? AND patient_id = ? AND status = ?", id, patientID, entity.ConsultationStatusPending).
		Updates(map[string]interface{}{
			"status":        entity.ConsultationStatusCancelled,
			"cancel_reason": reason,
		})
	return result.RowsAffected, result.Error
}

func (r *consultationRepository) MaxSequenceForYear(db *gorm.DB, year int) (int64, error) {
	var max int64
	err := db.Model(&entity.Consultation{}).
		Select("COALESCE(MAX(sequence_no), 0)").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Scan(&max).Error
	return max, err
}

func (r *consultationRepository) CountByStatus(db *gorm.DB, patientID int64, status entity.ConsultationStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Consultation{}).
		Where("patient_id = ? AND status = ?", patientID, status).
		Count(&count).Error
	return count, err
}
