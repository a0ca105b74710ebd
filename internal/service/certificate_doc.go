package service

import (
	"fmt"
	"net/url"
	"time"

	"rhu-patient-portal/config"
	"rhu-patient-portal/internal/domain/entity"
)

const qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// CertificateDocument is the verifiable payload handed to the document
// renderer: certificate number, patient identity, issuer, validity window
// and a verification URL. PDF layout and QR rendering happen outside this
// service; the QR image URL points at a third-party image API.
type CertificateDocument struct {
	Number          string     `json:"number"`
	Type            string     `json:"type"`
	Purpose         string     `json:"purpose"`
	PatientName     string     `json:"patient_name"`
	DateOfBirth     string     `json:"date_of_birth"`
	IssuedBy        string     `json:"issued_by"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	VerificationURL string     `json:"verification_url"`
	QRImageURL      string     `json:"qr_image_url"`
}

// CertificateDocService builds certificate documents and verification links.
type CertificateDocService struct {
	cfg config.PortalConfig
}

func NewCertificateDocService(cfg config.PortalConfig) *CertificateDocService {
	return &CertificateDocService{cfg: cfg}
}

// VerificationURL returns the public link that resolves a certificate number.
func (s *CertificateDocService) VerificationURL(number string) string {
	return fmt.Sprintf("%s/api/v1/certificates/verify/%s", s.cfg.BaseURL, url.PathEscape(number))
}

// QRImageURL returns a third-party QR image for the verification link.
func (s *CertificateDocService) QRImageURL(number string) string {
	query := url.Values{}
	query.Set("size", "200x200")
	query.Set("data", s.VerificationURL(number))
	return qrImageEndpoint + "?" + query.Encode()
}

// BuildDocument assembles the downloadable certificate payload.
func (s *CertificateDocService) BuildDocument(certificate *entity.MedicalCertificate, patient *entity.Patient) *CertificateDocument {
	issuedBy := certificate.IssuedBy
	if issuedBy == "" {
		issuedBy = s.cfg.CertificateIssuer
	}

	return &CertificateDocument{
		Number:          certificate.Number,
		Type:            certificate.Type,
		Purpose:         certificate.Purpose,
		PatientName:     patient.User.FullName,
		DateOfBirth:     patient.DateOfBirth.Format("2006-01-02"),
		IssuedBy:        issuedBy,
		ValidFrom:       certificate.ValidFrom,
		ValidUntil:      certificate.ValidUntil,
		VerificationURL: s.VerificationURL(certificate.Number),
		QRImageURL:      s.QRImageURL(certificate.Number),
	}
}
