package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"
	"rhu-patient-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound   = errors.New("consultation not found")
	ErrConsultationNotPending = errors.New("only pending consultations can be cancelled")
	ErrSequenceUnavailable    = errors.New("could not allocate a number, try again")
)

type ConsultationUsecase interface {
	Request(ctx context.Context, req *dto.RequestConsultationRequest) (*dto.ConsultationResponse, error)
	Cancel(ctx context.Context, consultationID int64, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error)
	GetByID(ctx context.Context, consultationID int64) (*dto.ConsultationResponse, error)
	List(ctx context.Context) (*dto.ConsultationListResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	consultationRepo repository.ConsultationRepository
	sequences        *service.SequenceService
	audit            service.AuditService
	notifier         service.NotificationService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	consultationRepo repository.ConsultationRepository,
	sequences *service.SequenceService,
	audit service.AuditService,
	notifier service.NotificationService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		sequences:        sequences,
		audit:            audit,
		notifier:         notifier,
	}
}

// Request files a new online consultation. The consultation number is drawn
// from the per-year sequence counter; a failed insert leaves a gap in the
// sequence, never a duplicate.
func (u *consultationUsecase) Request(ctx context.Context, req *dto.RequestConsultationRequest) (*dto.ConsultationResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().UTC().Year()
	seq, err := u.sequences.Next(ctx, service.SequenceConsultation, year)
	if err != nil {
		return nil, ErrSequenceUnavailable
	}

	consultation := &entity.Consultation{
		Number:         entity.ConsultationNumber(year, seq),
		SequenceNo:     seq,
		PatientID:      patient.ID,
		Type:           entity.ConsultationTypeOnline,
		ChiefComplaint: req.ChiefComplaint,
		Symptoms:       req.Symptoms,
		History:        req.History,
		Priority:       entity.ConsultationPriority(req.Priority),
		Status:         entity.ConsultationStatusPending,
	}

	db := u.db.WithContext(ctx)
	if err := u.consultationRepo.Create(db, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, db, &patient.UserID, entity.AuditActionConsultationRequest, "consultation", consultation.Number, map[string]interface{}{
		"priority": req.Priority,
	})

	u.notifier.Notify(ctx, db, patient.UserID, "Consultation requested",
		fmt.Sprintf("Your consultation %s has been received and is awaiting triage.", consultation.Number))

	return converter.ConsultationToResponse(consultation), nil
}

// Cancel cancels an owned consultation while it is still pending. The status
// guard is part of the UPDATE so a concurrent staff transition wins cleanly.
func (u *consultationUsecase) Cancel(ctx context.Context, consultationID int64, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	consultation, err := u.consultationRepo.FindByIDAndPatient(db, consultationID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	if !consultation.IsPending() {
		return nil, ErrConsultationNotPending
	}

	affected, err := u.consultationRepo.CancelPending(db, consultationID, patient.ID, req.Reason)
	if err != nil {
		u.log.Warnf("Failed to cancel consultation: %+v", err)
		return nil, err
	}
	if affected == 0 {
		// Raced with a staff transition; the row is no longer pending.
		return nil, ErrConsultationNotPending
	}

	consultation.Status = entity.ConsultationStatusCancelled
	consultation.CancelReason = req.Reason

	u.audit.LogUpdate(ctx, db, &patient.UserID, entity.AuditActionConsultationCancel, "consultation", consultation.Number, nil, map[string]interface{}{
		"reason": req.Reason,
	})

	u.notifier.Notify(ctx, db, patient.UserID, "Consultation cancelled",
		fmt.Sprintf("Your consultation %s has been cancelled.", consultation.Number))

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetByID(ctx context.Context, consultationID int64) (*dto.ConsultationResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	consultation, err := u.consultationRepo.FindByIDAndPatient(u.db.WithContext(ctx), consultationID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) List(ctx context.Context) (*dto.ConsultationListResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	consultations, err := u.consultationRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations),
		Total:         len(consultations),
	}, nil
}

func (u *consultationUsecase) patientForContext(ctx context.Context) (*entity.Patient, error) {
	return currentPatient(ctx, u.db, u.log, u.patientRepo)
}
