package repository

import (
	"time"

	"rhu-patient-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindActiveByUserID(db *gorm.DB, userID uuid.UUID, now time.Time) ([]entity.Notification, error)
	CountUnread(db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error)
	MarkRead(db *gorm.DB, id int64, userID uuid.UUID) (int64, error)
	MarkAllRead(db *gorm.DB, userID uuid.UUID) error
}
