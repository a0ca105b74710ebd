package usecase

import (
	"context"

	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"
	"rhu-patient-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const activityLogLimit = 50

// ProfileUsecase covers the patient's own profile page. Only contact and
// supplementary fields are editable; identity fields (name, date of birth,
// gender) are corrected at the front desk.
type ProfileUsecase interface {
	Get(ctx context.Context) (*dto.PatientResponse, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error)
	ListActivity(ctx context.Context) ([]dto.ActivityLogResponse, error)
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	barangayRepo repository.BarangayRepository
	auditRepo    repository.AuditLogRepository
	audit        service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	barangayRepo repository.BarangayRepository,
	auditRepo repository.AuditLogRepository,
	audit service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		barangayRepo: barangayRepo,
		auditRepo:    auditRepo,
		audit:        audit,
	}
}

func (u *profileUsecase) Get(ctx context.Context) (*dto.PatientResponse, error) {
	patient, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *profileUsecase) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error) {
	patient, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

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

	oldValues := map[string]interface{}{
		"phone_number":      patient.PhoneNumber,
		"address":           patient.Address,
		"barangay_id":       patient.BarangayID,
		"allergies":         patient.Allergies,
		"blood_type":        patient.BloodType,
		"philhealth_number": patient.PhilHealthNumber,
	}

	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.BarangayID != nil {
		patient.BarangayID = req.BarangayID
	}
	if req.Allergies != "" {
		patient.Allergies = req.Allergies
	}
	if req.BloodType != "" {
		patient.BloodType = req.BloodType
	}
	if req.PhilHealthNumber != "" {
		patient.PhilHealthNumber = req.PhilHealthNumber
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if barangay != nil {
		patient.Barangay = barangay
	}

	u.audit.LogUpdate(ctx, db, &patient.UserID, entity.AuditActionProfileUpdate, "patient", patient.User.ID.String(), oldValues, map[string]interface{}{
		"phone_number":      patient.PhoneNumber,
		"address":           patient.Address,
		"barangay_id":       patient.BarangayID,
		"allergies":         patient.Allergies,
		"blood_type":        patient.BloodType,
		"philhealth_number": patient.PhilHealthNumber,
	})

	return converter.PatientToResponse(patient), nil
}

// ListActivity returns the user's own recent audit trail entries, newest
// first. Patients only ever see their own rows.
func (u *profileUsecase) ListActivity(ctx context.Context) ([]dto.ActivityLogResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionExpired
	}

	logs, err := u.auditRepo.FindByUserID(u.db.WithContext(ctx), userID, activityLogLimit)
	if err != nil {
		u.log.Warnf("Failed to list activity log: %+v", err)
		return nil, err
	}

	responses := make([]dto.ActivityLogResponse, len(logs))
	for i, row := range logs {
		responses[i] = dto.ActivityLogResponse{
			ID:        row.ID,
			Action:    row.Action,
			Metadata:  row.Metadata,
			CreatedAt: row.CreatedAt,
		}
	}
	return responses, nil
}
