package converter

import (
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/entity"
)

func LaboratoryResultsToResponses(results []entity.LaboratoryResult) []dto.LaboratoryResultResponse {
	responses := make([]dto.LaboratoryResultResponse, len(results))
	for i, result := range results {
		responses[i] = dto.LaboratoryResultResponse{
			ID:         result.ID,
			TestName:   result.TestName,
			TestDate:   result.TestDate.Format("2006-01-02"),
			Status:     string(result.Status),
			Result:     result.Result,
			Remarks:    result.Remarks,
			ReleasedAt: result.ReleasedAt,
		}
	}
	return responses
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		items := make([]dto.PrescriptionItemResponse, len(prescription.Items))
		for j, item := range prescription.Items {
			items[j] = dto.PrescriptionItemResponse{
				Medication:   item.Medication,
				Dosage:       item.Dosage,
				Quantity:     item.Quantity,
				QtyDispensed: item.QtyDispensed,
				Instructions: item.Instructions,
			}
		}
		responses[i] = dto.PrescriptionResponse{
			ID:           prescription.ID,
			PrescribedBy: prescription.PrescribedBy,
			Diagnosis:    prescription.Diagnosis,
			Status:       string(prescription.Status),
			Items:        items,
			CreatedAt:    prescription.CreatedAt,
		}
	}
	return responses
}

func ReferralsToResponses(referrals []entity.Referral) []dto.ReferralResponse {
	responses := make([]dto.ReferralResponse, len(referrals))
	for i, referral := range referrals {
		responses[i] = dto.ReferralResponse{
			ID:           referral.ID,
			ReferredTo:   referral.ReferredTo,
			Reason:       referral.Reason,
			Status:       string(referral.Status),
			ReferralDate: referral.ReferralDate.Format("2006-01-02"),
			Notes:        referral.Notes,
		}
	}
	return responses
}
