// Package usecase holds the application services of the patient portal.
// Each usecase exposes an interface consumed by the HTTP handlers and owns
// its transactional boundaries.
package usecase

import (
	"context"

	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// currentPatient resolves the patient profile behind the authenticated user.
// Every patient-facing usecase starts here: all subsequent queries are scoped
// by the returned patient ID, which is what keeps one patient from reading
// another's rows.
func currentPatient(ctx context.Context, db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) (*entity.Patient, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionExpired
	}

	patient, err := patientRepo.FindByUserID(db.WithContext(ctx), userID)
	if err != nil {
		log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}
	return patient, nil
}
