package repository

import (
	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
