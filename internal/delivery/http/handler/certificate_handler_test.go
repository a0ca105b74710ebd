package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/service"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubCertificateUsecase struct {
	requestResponse *dto.CertificateResponse
	requestErr      error
	getResponse     *dto.CertificateResponse
	getErr          error
	listResponse    *dto.CertificateListResponse
	listErr         error
	downloadDoc     *service.CertificateDocument
	downloadErr     error
	verifyResponse  *dto.CertificateVerificationResponse
	verifyErr       error
}

func (s *stubCertificateUsecase) Request(ctx context.Context, req *dto.RequestCertificateRequest) (*dto.CertificateResponse, error) {
	return s.requestResponse, s.requestErr
}

func (s *stubCertificateUsecase) GetByID(ctx context.Context, id int64) (*dto.CertificateResponse, error) {
	return s.getResponse, s.getErr
}

func (s *stubCertificateUsecase) List(ctx context.Context) (*dto.CertificateListResponse, error) {
	return s.listResponse, s.listErr
}

func (s *stubCertificateUsecase) Download(ctx context.Context, id int64) (*service.CertificateDocument, error) {
	return s.downloadDoc, s.downloadErr
}

func (s *stubCertificateUsecase) Verify(ctx context.Context, number string) (*dto.CertificateVerificationResponse, error) {
	return s.verifyResponse, s.verifyErr
}

func TestRequestCertificateSuccess(t *testing.T) {
	stub := &stubCertificateUsecase{
		requestResponse: &dto.CertificateResponse{ID: 3, Number: "CERT-2025-0003", Status: "pending"},
	}
	h := NewCertificateHandler(stub, validator.NewValidator())

	payload, _ := json.Marshal(dto.RequestCertificateRequest{Type: "fit_to_work", Purpose: "Employment requirement"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/certificates", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Request(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "CERT-2025-0003", data["number"])
}

func TestRequestCertificateValidation(t *testing.T) {
	h := NewCertificateHandler(&stubCertificateUsecase{}, validator.NewValidator())

	payload, _ := json.Marshal(dto.RequestCertificateRequest{Type: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/certificates", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Request(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadCertificateNotReady(t *testing.T) {
	h := NewCertificateHandler(&stubCertificateUsecase{downloadErr: usecase.ErrCertificateNotReady}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/5/download", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDownloadCertificateExpired(t *testing.T) {
	h := NewCertificateHandler(&stubCertificateUsecase{downloadErr: usecase.ErrCertificateExpired}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/5/download", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestDownloadCertificateSuccess(t *testing.T) {
	stub := &stubCertificateUsecase{
		downloadDoc: &service.CertificateDocument{
			Number:          "CERT-2025-0005",
			PatientName:     "Juan Dela Cruz",
			VerificationURL: "https://portal.example.gov.ph/api/v1/certificates/verify/CERT-2025-0005",
		},
	}
	h := NewCertificateHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/5/download", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "CERT-2025-0005", data["number"])
	assert.NotEmpty(t, data["verification_url"])
}

func TestVerifyCertificateNotFound(t *testing.T) {
	h := NewCertificateHandler(&stubCertificateUsecase{verifyErr: usecase.ErrVerificationNotAvailable}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/verify/CERT-2025-9999", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "CERT-2025-9999"})
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyCertificateSuccess(t *testing.T) {
	stub := &stubCertificateUsecase{
		verifyResponse: &dto.CertificateVerificationResponse{
			Number:      "CERT-2025-0005",
			PatientName: "Juan Dela Cruz",
			IssuedBy:    "Municipal Rural Health Unit",
		},
	}
	h := NewCertificateHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/verify/CERT-2025-0005", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "CERT-2025-0005"})
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Juan Dela Cruz", data["patient_name"])
	// The public payload never includes the purpose or fee.
	assert.NotContains(t, data, "purpose")
	assert.NotContains(t, data, "fee")
}
