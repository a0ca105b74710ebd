package repository

import (
	"time"

	"rhu-patient-portal/internal/domain/entity"
	domainRepo "rhu-patient-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindActiveByUserID(db *gorm.DB, userID uuid.UUID, now time.Time) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := db.Where("user_id = ? AND (expires_at IS NULL OR expires_at > ?)", userID, now).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnread(db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = false AND (expires_at IS NULL OR expires_at > ?)", userID, now).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(db *gorm.DB, id int64, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) MarkAllRead(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}
