package service

import (
	"net/url"
	"testing"
	"time"

	"rhu-patient-portal/config"
	"rhu-patient-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocService() *CertificateDocService {
	return NewCertificateDocService(config.PortalConfig{
		BaseURL:           "https://portal.example.gov.ph",
		CertificateIssuer: "Municipal Rural Health Unit",
	})
}

func TestVerificationURL(t *testing.T) {
	s := newDocService()
	assert.Equal(t,
		"https://portal.example.gov.ph/api/v1/certificates/verify/CERT-2025-0007",
		s.VerificationURL("CERT-2025-0007"),
	)
}

func TestQRImageURLEncodesVerificationLink(t *testing.T) {
	s := newDocService()

	qrURL, err := url.Parse(s.QRImageURL("CERT-2025-0007"))
	require.NoError(t, err)

	assert.Equal(t, "api.qrserver.com", qrURL.Host)
	assert.Equal(t, "/v1/create-qr-code/", qrURL.Path)
	assert.Equal(t, "200x200", qrURL.Query().Get("size"))
	assert.Equal(t, s.VerificationURL("CERT-2025-0007"), qrURL.Query().Get("data"))
}

func TestBuildDocument(t *testing.T) {
	s := newDocService()

	validFrom := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	certificate := &entity.MedicalCertificate{
		Number:     "CERT-2025-0012",
		Type:       "fit_to_work",
		Purpose:    "Employment requirement",
		IssuedBy:   "Dr. A. Santos",
		ValidFrom:  &validFrom,
		ValidUntil: &validUntil,
	}
	patient := &entity.Patient{
		DateOfBirth: time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC),
		User:        entity.User{FullName: "Juan Dela Cruz"},
	}

	doc := s.BuildDocument(certificate, patient)

	assert.Equal(t, "CERT-2025-0012", doc.Number)
	assert.Equal(t, "Juan Dela Cruz", doc.PatientName)
	assert.Equal(t, "1990-01-15", doc.DateOfBirth)
	assert.Equal(t, "Dr. A. Santos", doc.IssuedBy)
	assert.Equal(t, s.VerificationURL("CERT-2025-0012"), doc.VerificationURL)
	assert.NotEmpty(t, doc.QRImageURL)
}

func TestBuildDocumentDefaultIssuer(t *testing.T) {
	s := newDocService()

	doc := s.BuildDocument(&entity.MedicalCertificate{Number: "CERT-2025-0001"}, &entity.Patient{
		DateOfBirth: time.Date(2000, time.May, 5, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "Municipal Rural Health Unit", doc.IssuedBy)
}
