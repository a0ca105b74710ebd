package dto

// DashboardResponse feeds the patient dashboard charts and summary cards.
type DashboardResponse struct {
	AppointmentsByStatus []StatusCountEntry     `json:"appointments_by_status"`
	UpcomingAppointments []AppointmentResponse  `json:"upcoming_appointments"`
	PendingConsultations int64                  `json:"pending_consultations"`
	CertificatesReady    int64                  `json:"certificates_ready"`
	UnreadNotifications  int64                  `json:"unread_notifications"`
	RecentNotifications  []NotificationResponse `json:"recent_notifications"`
}

type StatusCountEntry struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
