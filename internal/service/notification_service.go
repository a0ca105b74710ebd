package service

import (
	"context"
	"time"

	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Notifications live for 30 days unless a caller sets an explicit expiry.
const defaultNotificationTTL = 30 * 24 * time.Hour

// NotificationService creates user notifications as best-effort side effects
// of entity transitions. A failed insert is logged and swallowed; it must
// never fail the primary write.
type NotificationService interface {
	Notify(ctx context.Context, db *gorm.DB, userID uuid.UUID, title, message string)
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) Notify(ctx context.Context, db *gorm.DB, userID uuid.UUID, title, message string) {
	expiresAt := time.Now().Add(defaultNotificationTTL)
	notification := &entity.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		ExpiresAt: &expiresAt,
	}

	if err := s.notificationRepo.Create(db.WithContext(ctx), notification); err != nil {
		s.log.Warnf("Failed to create notification for user %s (non-fatal): %+v", userID, err)
	}
}
