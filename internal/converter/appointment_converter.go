package converter

import (
	"time"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/booking"
	"rhu-patient-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Cancellable mirrors the server-side cancellation guard so the client can
// show the cancel affordance only when the action would succeed.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DisplayID:       appointment.DisplayID(),
		Location:        string(appointment.Location),
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CancelReason:    appointment.CancelReason,
		Cancellable:     booking.CanCancel(appointment, time.Now()) == nil,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.ServiceType.ID != 0 {
		response.ServiceType = appointment.ServiceType.Name
	}
	if appointment.Barangay != nil {
		response.Barangay = appointment.Barangay.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// BarangaysToResponses converts barangay lookup rows.
func BarangaysToResponses(barangays []entity.Barangay) []dto.BarangayResponse {
	responses := make([]dto.BarangayResponse, len(barangays))
	for i, barangay := range barangays {
		responses[i] = dto.BarangayResponse{ID: barangay.ID, Name: barangay.Name}
	}
	return responses
}

// ServiceTypesToResponses converts service type lookup rows.
func ServiceTypesToResponses(serviceTypes []entity.ServiceType) []dto.ServiceTypeResponse {
	responses := make([]dto.ServiceTypeResponse, len(serviceTypes))
	for i, serviceType := range serviceTypes {
		responses[i] = dto.ServiceTypeResponse{
			ID:          serviceType.ID,
			Name:        serviceType.Name,
			Description: serviceType.Description,
		}
	}
	return responses
}
