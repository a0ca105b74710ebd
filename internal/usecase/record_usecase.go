package usecase

import (
	"context"

	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordUsecase serves the read-only health record page: laboratory results,
// prescriptions and referrals. Patients cannot modify clinical data.
type RecordUsecase interface {
	GetHealthRecord(ctx context.Context) (*dto.HealthRecordResponse, error)
	ListLaboratoryResults(ctx context.Context) ([]dto.LaboratoryResultResponse, error)
	ListPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error)
	ListReferrals(ctx context.Context) ([]dto.ReferralResponse, error)
}

type recordUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	labResultRepo    repository.LaboratoryResultRepository
	prescriptionRepo repository.PrescriptionRepository
	referralRepo     repository.ReferralRepository
}

func NewRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	labResultRepo repository.LaboratoryResultRepository,
	prescriptionRepo repository.PrescriptionRepository,
	referralRepo repository.ReferralRepository,
) RecordUsecase {
	return &recordUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		labResultRepo:    labResultRepo,
		prescriptionRepo: prescriptionRepo,
		referralRepo:     referralRepo,
	}
}

func (u *recordUsecase) GetHealthRecord(ctx context.Context) (*dto.HealthRecordResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	results, err := u.labResultRepo.FindByPatientID(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list laboratory results: %+v", err)
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	referrals, err := u.referralRepo.FindByPatientID(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list referrals: %+v", err)
		return nil, err
	}

	return &dto.HealthRecordResponse{
		LaboratoryResults: converter.LaboratoryResultsToResponses(results),
		Prescriptions:     converter.PrescriptionsToResponses(prescriptions),
		Referrals:         converter.ReferralsToResponses(referrals),
	}, nil
}

func (u *recordUsecase) ListLaboratoryResults(ctx context.Context) ([]dto.LaboratoryResultResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	results, err := u.labResultRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list laboratory results: %+v", err)
		return nil, err
	}
	return converter.LaboratoryResultsToResponses(results), nil
}

func (u *recordUsecase) ListPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *recordUsecase) ListReferrals(ctx context.Context) ([]dto.ReferralResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	referrals, err := u.referralRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list referrals: %+v", err)
		return nil, err
	}
	return converter.ReferralsToResponses(referrals), nil
}

func (u *recordUsecase) patientForContext(ctx context.Context) (*entity.Patient, error) {
	return currentPatient(ctx, u.db, u.log, u.patientRepo)
}
