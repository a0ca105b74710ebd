package handler

import (
	"encoding/json"
	"net/http"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
	"rhu-patient-portal/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Request(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrSequenceUnavailable:
			response.Error(w, http.StatusServiceUnavailable, "Could not allocate a consultation number, try again", nil)
		default:
			response.InternalServerError(w, "Failed to request consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation requested successfully", consultation)
}

func (h *ConsultationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	consultationID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	var req dto.CancelConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	consultation, err := h.consultationUsecase.Cancel(r.Context(), consultationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound, usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrConsultationNotPending:
			response.Error(w, http.StatusConflict, "Only pending consultations can be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation cancelled successfully", consultation)
}

func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	consultationID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	consultation, err := h.consultationUsecase.GetByID(r.Context(), consultationID)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound, usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Consultation not found")
		default:
			response.InternalServerError(w, "Failed to get consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.consultationUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list consultations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}
