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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound      = errors.New("certificate not found")
	ErrCertificateNotReady      = errors.New("certificate is not ready for download")
	ErrCertificateExpired       = errors.New("certificate has expired")
	ErrVerificationNotAvailable = errors.New("certificate number not found")
)

type CertificateUsecase interface {
	Request(ctx context.Context, req *dto.RequestCertificateRequest) (*dto.CertificateResponse, error)
	GetByID(ctx context.Context, certificateID int64) (*dto.CertificateResponse, error)
	List(ctx context.Context) (*dto.CertificateListResponse, error)
	Download(ctx context.Context, certificateID int64) (*service.CertificateDocument, error)
	Verify(ctx context.Context, number string) (*dto.CertificateVerificationResponse, error)
}

type certificateUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	certificateRepo repository.CertificateRepository
	sequences       *service.SequenceService
	documents       *service.CertificateDocService
	audit           service.AuditService
	notifier        service.NotificationService
}

func NewCertificateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	certificateRepo repository.CertificateRepository,
	sequences *service.SequenceService,
	documents *service.CertificateDocService,
	audit service.AuditService,
	notifier service.NotificationService,
) CertificateUsecase {
	return &certificateUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		certificateRepo: certificateRepo,
		sequences:       sequences,
		documents:       documents,
		audit:           audit,
		notifier:        notifier,
	}
}

// Request files a medical certificate request. The certificate starts in
// pending; staff drive it through the checkup workflow before it becomes
// downloadable. The fee is assessed by staff later and starts at zero.
func (u *certificateUsecase) Request(ctx context.Context, req *dto.RequestCertificateRequest) (*dto.CertificateResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().UTC().Year()
	seq, err := u.sequences.Next(ctx, service.SequenceCertificate, year)
	if err != nil {
		return nil, ErrSequenceUnavailable
	}

	certificate := &entity.MedicalCertificate{
		Number:     entity.CertificateNumber(year, seq),
		SequenceNo: seq,
		PatientID:  patient.ID,
		Type:       req.Type,
		Purpose:    req.Purpose,
		Status:     entity.CertificateStatusPending,
		Fee:        decimal.Zero,
	}

	db := u.db.WithContext(ctx)
	if err := u.certificateRepo.Create(db, certificate); err != nil {
		u.log.Warnf("Failed to create certificate request: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, db, &patient.UserID, entity.AuditActionCertificateRequest, "medical_certificate", certificate.Number, map[string]interface{}{
		"type":    req.Type,
		"purpose": req.Purpose,
	})

	u.notifier.Notify(ctx, db, patient.UserID, "Certificate requested",
		fmt.Sprintf("Your medical certificate request %s has been received and is awaiting approval.", certificate.Number))

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetByID(ctx context.Context, certificateID int64) (*dto.CertificateResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	certificate, err := u.certificateRepo.FindByIDAndPatient(u.db.WithContext(ctx), certificateID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) List(ctx context.Context) (*dto.CertificateListResponse, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	certificates, err := u.certificateRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list certificates: %+v", err)
		return nil, err
	}

	return &dto.CertificateListResponse{
		Certificates: converter.CertificatesToResponses(certificates),
		Total:        len(certificates),
	}, nil
}

// Download serves the certificate document once the workflow has reached
// ready_for_download. The first download flips the status to downloaded via
// a guarded UPDATE; repeat downloads are allowed and leave the row alone.
func (u *certificateUsecase) Download(ctx context.Context, certificateID int64) (*service.CertificateDocument, error) {
	patient, err := u.patientForContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	certificate, err := u.certificateRepo.FindByIDAndPatient(db, certificateID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	if certificate.IsExpired(time.Now()) {
		return nil, ErrCertificateExpired
	}
	if !certificate.IsDownloadable() {
		return nil, ErrCertificateNotReady
	}

	if certificate.Status == entity.CertificateStatusReadyForDownload {
		affected, err := u.certificateRepo.MarkDownloaded(db, certificateID, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to mark certificate downloaded: %+v", err)
			return nil, err
		}
		if affected == 1 {
			certificate.Status = entity.CertificateStatusDownloaded
			u.audit.LogUpdate(ctx, db, &patient.UserID, entity.AuditActionCertificateDownload, "medical_certificate", certificate.Number, nil, map[string]interface{}{
				"status": string(entity.CertificateStatusDownloaded),
			})
		}
		// affected == 0 means another request won the flip; the document is
		// still served.
	}

	return u.documents.BuildDocument(certificate, patient), nil
}

// Verify resolves a certificate number on the public verification page.
// Certificates still moving through the workflow do not verify; neither do
// cancelled ones.
func (u *certificateUsecase) Verify(ctx context.Context, number string) (*dto.CertificateVerificationResponse, error) {
	certificate, err := u.certificateRepo.FindByNumber(u.db.WithContext(ctx), number)
	if err != nil {
		u.log.Warnf("Failed to look up certificate by number: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrVerificationNotAvailable
	}

	switch certificate.Status {
	case entity.CertificateStatusReadyForDownload, entity.CertificateStatusDownloaded, entity.CertificateStatusExpired:
	default:
		return nil, ErrVerificationNotAvailable
	}

	return converter.CertificateToVerification(certificate, time.Now()), nil
}

func (u *certificateUsecase) patientForContext(ctx context.Context) (*entity.Patient, error) {
	return currentPatient(ctx, u.db, u.log, u.patientRepo)
}
