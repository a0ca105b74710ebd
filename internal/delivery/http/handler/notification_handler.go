package handler

import (
	"net/http"

	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), notificationID); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification as read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationUsecase.MarkAllRead(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to mark notifications as read")
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked as read", nil)
}
