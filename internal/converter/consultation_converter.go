package converter

import (
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to its response DTO
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:             consultation.ID,
		Number:         consultation.Number,
		Type:           string(consultation.Type),
		ChiefComplaint: consultation.ChiefComplaint,
		Symptoms:       consultation.Symptoms,
		History:        consultation.History,
		Priority:       string(consultation.Priority),
		Status:         string(consultation.Status),
		MeetingLink:    consultation.MeetingLink,
		Cancellable:    consultation.IsPending(),
		CreatedAt:      consultation.CreatedAt,
		UpdatedAt:      consultation.UpdatedAt,
	}

	if consultation.Doctor != nil {
		response.DoctorName = consultation.Doctor.FullName
	}

	return response
}

// ConsultationsToResponses converts a slice of Consultation entities
func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		resp := ConsultationToResponse(&consultation)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
