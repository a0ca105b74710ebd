package converter

import (
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
)

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = dto.NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		}
	}
	return responses
}
