package repository

import (
	"errors"
	"time"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("ServiceType").Preload("Barangay").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("ServiceType").Preload("Barangay").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByPatient(db *gorm.DB, patientID int64, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("ServiceType").Preload("Barangay").
		Where("patient_id = ? AND appointment_date >= ? AND status IN ?",
			patientID, from,
			[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, entity.AppointmentStatusRescheduled}).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountActiveOnDate(db *gorm.DB, patientID int64, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND appointment_date = ? AND status NOT IN ?",
			patientID, date,
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow, entity.AppointmentStatusCompleted}).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountBySlot(db *gorm.DB, date time.Time, timeOfDay string, location entity.AppointmentLocation) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ? AND location = ? AND status NOT IN ?",
			date, timeOfDay, location,
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow}).
		Count(&count).Error
	return count, err
}

// Cancel guards the transition in the UPDATE itself so a raced double-cancel
// or an out-of-window cancel simply reports zero affected rows.
func (r *appointmentRepository) Cancel(db *gorm.DB, id int64, patientID int64, reason string) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND patient_id = ? AND status IN ?",
			id, patientID,
			[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, entity.AppointmentStatusRescheduled}).
		Updates(map[string]interface{}{
			"status":        entity.AppointmentStatusCancelled,
			"cancel_reason": reason,
		})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, patientID int64) ([]domainRepo.StatusCount, error) {
	var counts []domainRepo.StatusCount
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("patient_id = ?", patientID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
