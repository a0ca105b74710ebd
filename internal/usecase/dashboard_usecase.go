package usecase

import (
	"context"
	"time"

	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dashboardUpcomingLimit      = 5
	dashboardNotificationsLimit = 5
)

// DashboardUsecase aggregates the patient's landing page: appointment counts
// per status, upcoming appointments and unread notifications.
type DashboardUsecase interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	certificateRepo  repository.CertificateRepository
	notificationRepo repository.NotificationRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	certificateRepo repository.CertificateRepository,
	notificationRepo repository.NotificationRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
		certificateRepo:  certificateRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *dashboardUsecase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	patient, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	now := time.Now()

	statusCounts, err := u.appointmentRepo.CountByStatus(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByPatient(db, patient.ID, now, dashboardUpcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	pendingConsultations, err := u.consultationRepo.CountByStatus(db, patient.ID, entity.ConsultationStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending consultations: %+v", err)
		return nil, err
	}

	certificatesReady, err := u.certificateRepo.CountByStatus(db, patient.ID, entity.CertificateStatusReadyForDownload)
	if err != nil {
		u.log.Warnf("Failed to count ready certificates: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(db, patient.UserID, now)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	notifications, err := u.notificationRepo.FindActiveByUserID(db, patient.UserID, now)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}
	if len(notifications) > dashboardNotificationsLimit {
		notifications = notifications[:dashboardNotificationsLimit]
	}

	entries := make([]dto.StatusCountEntry, len(statusCounts))
	for i, row := range statusCounts {
		entries[i] = dto.StatusCountEntry{Status: row.Status, Count: row.Count}
	}

	return &dto.DashboardResponse{
		AppointmentsByStatus: entries,
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
		PendingConsultations: pendingConsultations,
		CertificatesReady:    certificatesReady,
		UnreadNotifications:  unread,
		RecentNotifications:  converter.NotificationsToResponses(notifications),
	}, nil
}
