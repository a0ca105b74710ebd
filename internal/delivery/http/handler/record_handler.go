package handler

import (
	"net/http"

	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
)

type RecordHandler struct {
	recordUsecase usecase.RecordUsecase
}

func NewRecordHandler(recordUsecase usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{recordUsecase: recordUsecase}
}

func (h *RecordHandler) GetHealthRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.recordUsecase.GetHealthRecord(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record retrieved successfully", record)
}

func (h *RecordHandler) ListLaboratoryResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.recordUsecase.ListLaboratoryResults(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list laboratory results")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory results retrieved successfully", results)
}

func (h *RecordHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.recordUsecase.ListPrescriptions(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list prescriptions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *RecordHandler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.recordUsecase.ListReferrals(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list referrals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}
