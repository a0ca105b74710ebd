package handler

import (
	"encoding/json"
	"net/http"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
	"rhu-patient-portal/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.Get(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrBarangayNotFound:
			response.NotFound(w, "Barangay not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.profileUsecase.ListActivity(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
