package converter

import (
	"time"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
)

// CertificateToResponse converts a MedicalCertificate entity to its response DTO
func CertificateToResponse(certificate *entity.MedicalCertificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateResponse{
		ID:           certificate.ID,
		Number:       certificate.Number,
		Type:         certificate.Type,
		Purpose:      certificate.Purpose,
		Status:       string(certificate.Status),
		Fee:          certificate.Fee,
		IssuedBy:     certificate.IssuedBy,
		ValidFrom:    certificate.ValidFrom,
		ValidUntil:   certificate.ValidUntil,
		Downloadable: certificate.IsDownloadable(),
		DownloadedAt: certificate.DownloadedAt,
		CreatedAt:    certificate.CreatedAt,
		UpdatedAt:    certificate.UpdatedAt,
	}
}

// CertificatesToResponses converts a slice of MedicalCertificate entities
func CertificatesToResponses(certificates []entity.MedicalCertificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, len(certificates))
	for i, certificate := range certificates {
		resp := CertificateToResponse(&certificate)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CertificateToVerification builds the minimal public verification payload.
// Clinical detail (purpose, fee) is intentionally excluded.
func CertificateToVerification(certificate *entity.MedicalCertificate, now time.Time) *dto.CertificateVerificationResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateVerificationResponse{
		Number:      certificate.Number,
		Type:        certificate.Type,
		PatientName: certificate.Patient.User.FullName,
		IssuedBy:    certificate.IssuedBy,
		ValidFrom:   certificate.ValidFrom,
		ValidUntil:  certificate.ValidUntil,
		Expired:     certificate.IsExpired(now),
	}
}
