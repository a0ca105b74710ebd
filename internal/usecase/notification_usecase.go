package usecase

import (
	"context"
	"errors"
	"time"

	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	List(ctx context.Context) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// List returns the user's notifications that have not expired, newest first.
func (u *notificationUsecase) List(ctx context.Context) (*dto.NotificationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionExpired
	}

	db := u.db.WithContext(ctx)
	now := time.Now()

	notifications, err := u.notificationRepo.FindActiveByUserID(db, userID, now)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(db, userID, now)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		UnreadCount:   unread,
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, notificationID int64) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionExpired
	}

	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionExpired
	}

	if err := u.notificationRepo.MarkAllRead(u.db.WithContext(ctx), userID); err != nil {
		u.log.Warnf("Failed to mark all notifications read: %+v", err)
		return err
	}
	return nil
}
