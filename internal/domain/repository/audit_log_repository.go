package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository is append-only: audit rows are never updated or deleted.
type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
