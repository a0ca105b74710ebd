package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *entity.MedicalCertificate) error
	FindByIDAndPatient(db *gorm.DB, id int64, patientID int64) (*entity.MedicalCertificate, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.MedicalCertificate, error)

	// FindByNumber looks a certificate up by its display number for the
	// public verification endpoint. Not patient-scoped by design.
	FindByNumber(db *gorm.DB, number string) (*entity.MedicalCertificate, error)

	// MarkDownloaded atomically moves ready_for_download -> downloaded.
	// Returns affected rows: 0 means the certificate was already downloaded
	// (idempotent second call) or not in a downloadable state.
	MarkDownloaded(db *gorm.DB, id int64, patientID int64) (int64, error)

	// MaxSequenceForYear returns the highest sequence number issued for the
	// year, used to re-seed the sequence counter at startup.
	MaxSequenceForYear(db *gorm.DB, year int) (int64, error)

	CountByStatus(db *gorm.DB, patientID int64, status entity.CertificateStatus) (int64, error)
}
