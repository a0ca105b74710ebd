package handler

import (
	"encoding/json"
	"net/http"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
	"rhu-patient-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	validator          *validator.CustomValidator
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, validator *validator.CustomValidator) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		validator:          validator,
	}
}

func (h *CertificateHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.Request(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrSequenceUnavailable:
			response.Error(w, http.StatusServiceUnavailable, "Could not allocate a certificate number, try again", nil)
		default:
			response.InternalServerError(w, "Failed to request certificate")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Certificate requested successfully", certificate)
}

func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	certificateID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	certificate, err := h.certificateUsecase.GetByID(r.Context(), certificateID)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound, usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to get certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate retrieved successfully", certificate)
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list certificates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}

// Download serves the certificate document payload. The first successful
// download moves the certificate to downloaded; repeats are allowed.
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	certificateID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	document, err := h.certificateUsecase.Download(r.Context(), certificateID)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound, usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Certificate not found")
		case usecase.ErrCertificateNotReady:
			response.Error(w, http.StatusConflict, "Certificate is not ready for download", nil)
		case usecase.ErrCertificateExpired:
			response.Error(w, http.StatusGone, "Certificate has expired", nil)
		default:
			response.InternalServerError(w, "Failed to download certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate document generated successfully", document)
}

// Verify is the public certificate verification endpoint; it requires no
// authentication and exposes no clinical detail.
func (h *CertificateHandler) Verify(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if number == "" {
		response.Error(w, http.StatusBadRequest, "Certificate number is required", nil)
		return
	}

	verification, err := h.certificateUsecase.Verify(r.Context(), number)
	if err != nil {
		switch err {
		case usecase.ErrVerificationNotAvailable:
			response.NotFound(w, "Certificate number not found")
		default:
			response.InternalServerError(w, "Failed to verify certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate verified successfully", verification)
}
