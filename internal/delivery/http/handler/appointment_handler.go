package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/booking"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
	"rhu-patient-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		switch err {
		case booking.ErrRHUWalkInOnly:
			response.Error(w, http.StatusBadRequest, "RHU appointments are walk-in only and cannot be booked online", nil)
		case booking.ErrBarangayRequired:
			response.Error(w, http.StatusBadRequest, "A barangay is required for BHS appointments", nil)
		case booking.ErrPastDate:
			response.Error(w, http.StatusBadRequest, "Appointment date cannot be in the past", nil)
		case booking.ErrAlreadyBookedOnDay:
			response.Error(w, http.StatusConflict, "You already have an appointment on this date; only one appointment per day is allowed", nil)
		case booking.ErrSlotFull:
			response.Error(w, http.StatusConflict, "The selected time slot is fully booked", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date, use YYYY-MM-DD", nil)
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		case usecase.ErrBarangayNotFound:
			response.NotFound(w, "Barangay not found")
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case booking.ErrNotCancellable:
			response.Error(w, http.StatusConflict, "Appointment can no longer be cancelled", nil)
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListBarangays(w http.ResponseWriter, r *http.Request) {
	barangays, err := h.appointmentUsecase.ListBarangays(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list barangays")
		return
	}

	response.Success(w, http.StatusOK, "Barangays retrieved successfully", barangays)
}

func (h *AppointmentHandler) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.appointmentUsecase.ListServiceTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list service types")
		return
	}

	response.Success(w, http.StatusOK, "Service types retrieved successfully", serviceTypes)
}

// parseIDVar reads a numeric path variable.
func parseIDVar(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
