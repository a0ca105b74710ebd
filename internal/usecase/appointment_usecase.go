package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rhu-patient-portal/config"
	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/booking"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"
	"rhu-patient-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrServiceTypeNotFound    = errors.New("service type not found")
	ErrBarangayNotFound       = errors.New("barangay not found")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID int64, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListBarangays(ctx context.Context) ([]dto.BarangayResponse, error)
	ListServiceTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingCfg      config.BookingConfig
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	serviceTypeRepo repository.ServiceTypeRepository
	barangayRepo    repository.BarangayRepository
	audit           service.AuditService
	notifier        service.NotificationService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingCfg config.BookingConfig,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	barangayRepo repository.BarangayRepository,
	audit service.AuditService,
	notifier service.NotificationService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		bookingCfg:      bookingCfg,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		serviceTypeRepo: serviceTypeRepo,
		barangayRepo:    barangayRepo,
		audit:           audit,
		notifier:        notifier,
	}
}

func (u *appointmentUsecase) patientForContext(ctx context.Context) (*entity.Patient, error) {
	return currentPatient(ctx, u.db, u.log, u.patientRepo)
}

// Book creates a new appointment for the logged-in patient. The one-per-day
// and slot-capacity counts run in the same transaction as the insert so a
// failed insert never leaves a partial write; under read-committed isolation
// two concurrent requests can still both pass the counts, and the front desk
// resolves an overbooked slot when confirming.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointmentTime := req.AppointmentTime
	if appointmentTime == "" {
		appointmentTime = entity.TimeUnassigned
	}

	location := entity.AppointmentLocation(req.Location)
	if err := booking.ValidateRequest(booking.Request{
		Location:   location,
		BarangayID: req.BarangayID,
		Date:       date,
		Time:       appointmentTime,
	}, time.Now()); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	serviceType, err := u.serviceTypeRepo.FindByID(db, req.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	var barangay *entity.Barangay
	if req.BarangayID != nil {
		barangay, err = u.barangayRepo.FindByID(db, *req.BarangayID)
		if err != nil {
			return nil, err
		}
		if barangay == nil {
			return nil, ErrBarangayNotFound
		}
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		ServiceTypeID:   req.ServiceTypeID,
		Location:        location,
		BarangayID:      req.BarangayID,
		AppointmentDate: booking.DateOnly(date),
		AppointmentTime: appointmentTime,
		Status:          entity.AppointmentStatusPending,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	tx := db.Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.CountActiveOnDate(tx, patient.ID, date)
	if err != nil {
		u.log.Warnf("Failed to count appointments on date: %+v", err)
		return nil, err
	}
	if err := booking.CheckDailyLimit(existing); err != nil {
		return nil, err
	}

	booked, err := u.appointmentRepo.CountBySlot(tx, date, appointmentTime, location)
	if err != nil {
		u.log.Warnf("Failed to count slot occupancy: %+v", err)
		return nil, err
	}
	if err := booking.CheckSlotCapacity(appointmentTime, booked, u.bookingCfg.SlotCapacity); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.ServiceType = *serviceType
	appointment.Barangay = barangay

	u.audit.LogCreate(ctx, db, &patient.UserID, entity.AuditActionAppointmentBook, "appointment", appointment.DisplayID(), map[string]interface{}{
		"service_type":     serviceType.Name,
		"location":         string(location),
		"appointment_date": req.AppointmentDate,
		"appointment_time": appointmentTime,
	})

	message := fmt.Sprintf("Your appointment %s on %s is pending confirmation.", appointment.DisplayID(), req.AppointmentDate)
	if !appointment.HasAssignedTime() {
		message = fmt.Sprintf("Your appointment %s on %s is pending; the health station will assign a time.", appointment.DisplayID(), req.AppointmentDate)
	}
	u.notifier.Notify(ctx, db, patient.UserID, "Appointment requested", message)

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel cancels an owned, still-open appointment. The status guard runs in
// the UPDATE itself so a concurrent admin transition cannot be overwritten.
func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID int64, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByIDAndPatient(db, appointmentID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := booking.CanCancel(appointment, time.Now()); err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.Cancel(db, appointmentID, patient.ID, req.Reason)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		// Raced with an admin transition; the row is no longer open.
		return nil, booking.ErrNotCancellable
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancelReason = req.Reason

	u.audit.LogUpdate(ctx, db, &patient.UserID, entity.AuditActionAppointmentCancel, "appointment", appointment.DisplayID(), nil, map[string]interface{}{
		"reason": req.Reason,
	})

	u.notifier.Notify(ctx, db, patient.UserID, "Appointment cancelled",
		fmt.Sprintf("Your appointment %s has been cancelled.", appointment.DisplayID()))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByIDAndPatient(u.db.WithContext(ctx), appointmentID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListBarangays(ctx context.Context) ([]dto.BarangayResponse, error) {
	barangays, err := u.barangayRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list barangays: %+v", err)
		return nil, err
	}
	return converter.BarangaysToResponses(barangays), nil
}

func (u *appointmentUsecase) ListServiceTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	serviceTypes, err := u.serviceTypeRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list service types: %+v", err)
		return nil, err
	}
	return converter.ServiceTypesToResponses(serviceTypes), nil
}
