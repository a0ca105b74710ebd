package converter

import (
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
)

// PatientToResponse converts a Patient entity (with its User preloaded) to
// the profile response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               patient.ID,
		FullName:         patient.User.FullName,
		Email:            patient.User.Email,
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		PhoneNumber:      patient.PhoneNumber,
		Address:          patient.Address,
		BarangayID:       patient.BarangayID,
		Allergies:        patient.Allergies,
		BloodType:        patient.BloodType,
		PhilHealthNumber: patient.PhilHealthNumber,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}

	if patient.Barangay != nil {
		response.Barangay = patient.Barangay.Name
	}

	return response
}
